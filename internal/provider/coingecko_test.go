package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestCoinGeckoProviderTrending(t *testing.T) {
	t.Parallel()

	provider := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"))
	provider.baseURL = "http://example"
	provider.fetcher = fetch.New(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !strings.Contains(req.URL.Path, "/search/trending") {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			resp := map[string]interface{}{
				"coins": []map[string]interface{}{
					{"item": map[string]interface{}{
						"id":              "pepe",
						"name":            "Pepe",
						"symbol":          "PEPE",
						"market_cap_rank": 42,
						"thumb":           "http://img/pepe.png",
						"price_btc":       0.00000012,
						"score":           0,
					}},
					{"item": map[string]interface{}{
						"id":    "sui",
						"name":  "Sui",
						"score": 1,
					}},
				},
			}
			data, _ := json.Marshal(resp)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(data)),
				Header:     make(http.Header),
			}, nil
		}),
	})
	provider.limiter = NewRateLimiter(10, time.Millisecond)

	coins := provider.Trending(context.Background())
	if len(coins) != 2 {
		t.Fatalf("expected 2 trending coins, got %d", len(coins))
	}
	if coins[0].ID != "pepe" || coins[0].MarketCapRank != 42 || coins[0].PriceBTC != 0.00000012 {
		t.Fatalf("unexpected first coin: %+v", coins[0])
	}
	if coins[1].Score != 1 {
		t.Fatalf("expected score order preserved, got %+v", coins[1])
	}
}

func TestCoinGeckoProviderSimplePrices(t *testing.T) {
	t.Parallel()

	provider := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"))
	provider.baseURL = "http://example"
	provider.fetcher = fetch.New(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !strings.Contains(req.URL.Path, "/simple/price") {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			q := req.URL.Query()
			if q.Get("ids") != "bitcoin,ethereum" {
				t.Fatalf("unexpected ids param: %s", q.Get("ids"))
			}
			if q.Get("vs_currencies") != "eur" {
				t.Fatalf("unexpected vs_currencies param: %s", q.Get("vs_currencies"))
			}
			if q.Get("include_market_cap") != "true" || q.Get("include_24hr_vol") != "true" || q.Get("include_24hr_change") != "true" {
				t.Fatalf("missing include params: %s", req.URL.RawQuery)
			}
			// ethereum has no eur quote and must be dropped.
			resp := map[string]map[string]float64{
				"bitcoin":  {"eur": 90000, "eur_market_cap": 1.8e12, "eur_24h_vol": 4.2e10, "eur_24h_change": -1.5},
				"ethereum": {"eur_24h_change": 2.0},
			}
			data, _ := json.Marshal(resp)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(data)),
				Header:     make(http.Header),
			}, nil
		}),
	})
	provider.limiter = NewRateLimiter(10, time.Millisecond)

	quotes := provider.SimplePrices(context.Background(), []string{"bitcoin", "ethereum"}, "eur")
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(quotes))
	}
	btc, ok := quotes["bitcoin"]
	if !ok || btc.Value != 90000 {
		t.Fatalf("expected bitcoin quote, got %+v", quotes)
	}
	if btc.Currency != "eur" || btc.Change24h != -1.5 || btc.MarketCap != 1.8e12 || btc.Volume24h != 4.2e10 {
		t.Fatalf("unexpected quote values: %+v", btc)
	}
}

func TestCoinGeckoProviderMarkets(t *testing.T) {
	t.Parallel()

	provider := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"))
	provider.baseURL = "http://example"
	provider.fetcher = fetch.New(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !strings.Contains(req.URL.Path, "/coins/markets") {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			q := req.URL.Query()
			if q.Get("order") != "volume_desc" {
				t.Fatalf("unexpected order param: %s", q.Get("order"))
			}
			if q.Get("per_page") != "2" || q.Get("page") != "3" {
				t.Fatalf("unexpected paging params: %s", req.URL.RawQuery)
			}
			if q.Get("price_change_percentage") != "24h,7d" {
				t.Fatalf("unexpected price_change_percentage: %s", q.Get("price_change_percentage"))
			}
			resp := []map[string]interface{}{
				{
					"id":                          "bitcoin",
					"symbol":                      "btc",
					"name":                        "Bitcoin",
					"image":                       "http://img/btc.png",
					"current_price":               97000.0,
					"market_cap":                  1.9e12,
					"market_cap_rank":             1,
					"total_volume":                4.5e10,
					"price_change_percentage_24h": 2.1,
					"price_change_percentage_7d_in_currency": -3.4,
				},
			}
			data, _ := json.Marshal(resp)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(data)),
				Header:     make(http.Header),
			}, nil
		}),
	})
	provider.limiter = NewRateLimiter(10, time.Millisecond)

	markets := provider.Markets(context.Background(), 2, 3, "volume_desc")
	if len(markets) != 1 {
		t.Fatalf("expected 1 market row, got %d", len(markets))
	}
	row := markets[0]
	if row.ID != "bitcoin" || row.MarketCapRank != 1 {
		t.Fatalf("unexpected market row: %+v", row)
	}
	if row.Change24h != 2.1 || row.Change7d != -3.4 {
		t.Fatalf("unexpected change values: %+v", row)
	}
}

func TestCoinGeckoProviderSearch(t *testing.T) {
	t.Parallel()

	provider := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"))
	provider.baseURL = "http://example"
	provider.fetcher = fetch.New(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if !strings.Contains(req.URL.Path, "/search") {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			if q := req.URL.Query().Get("query"); q != "doge" {
				t.Fatalf("unexpected query param: %s", q)
			}
			resp := map[string]interface{}{
				"coins": []map[string]interface{}{
					{"id": "dogecoin", "name": "Dogecoin", "symbol": "DOGE", "market_cap_rank": 9, "thumb": "http://img/doge.png"},
				},
			}
			data, _ := json.Marshal(resp)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(data)),
				Header:     make(http.Header),
			}, nil
		}),
	})
	provider.limiter = NewRateLimiter(10, time.Millisecond)

	results := provider.Search(context.Background(), "doge")
	if len(results) != 1 {
		t.Fatalf("expected 1 search result, got %d", len(results))
	}
	if results[0].ID != "dogecoin" || results[0].MarketCapRank != 9 {
		t.Fatalf("unexpected search result: %+v", results[0])
	}
}
