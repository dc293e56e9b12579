package provider

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coinlens/internal/domain"
	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider fetches prices, market listings, trending coins and
// search results from the CoinGecko free API.
type CoinGeckoProvider struct {
	fetcher *fetch.Fetcher
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewCoinGeckoProvider creates a new provider with built-in rate limiting.
// Rate limited to 8 requests per minute (one token every 7.5 seconds).
func NewCoinGeckoProvider(tracer trace.Tracer) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		fetcher: fetch.New(&http.Client{Timeout: fetch.DefaultTimeout}),
		baseURL: coingeckoBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
	}
}

// Trending returns the coins currently trending on CoinGecko search.
func (p *CoinGeckoProvider) Trending(ctx context.Context) []domain.TrendingCoin {
	ctx, span := p.tracer.Start(ctx, "coingecko.trending")
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		log.Printf("coingecko rate limit wait: %v", err)
		return nil
	}

	// Response shape: {"coins": [{"item": {"id": "pepe", "score": 0, ...}}, ...]}
	var raw struct {
		Coins []struct {
			Item struct {
				ID            string  `json:"id"`
				Name          string  `json:"name"`
				Symbol        string  `json:"symbol"`
				MarketCapRank int     `json:"market_cap_rank"`
				Thumb         string  `json:"thumb"`
				PriceBTC      float64 `json:"price_btc"`
				Score         int     `json:"score"`
			} `json:"item"`
		} `json:"coins"`
	}
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/search/trending", nil, nil, &raw) {
		return nil
	}

	coins := make([]domain.TrendingCoin, 0, len(raw.Coins))
	for _, c := range raw.Coins {
		coins = append(coins, domain.TrendingCoin{
			ID:            c.Item.ID,
			Name:          c.Item.Name,
			Symbol:        c.Item.Symbol,
			MarketCapRank: c.Item.MarketCapRank,
			Thumb:         c.Item.Thumb,
			PriceBTC:      c.Item.PriceBTC,
			Score:         c.Item.Score,
		})
	}
	return coins
}

// SimplePrices returns current quotes for the given coin IDs in a single
// call. Coins the API does not quote in currency are left out of the map.
func (p *CoinGeckoProvider) SimplePrices(ctx context.Context, ids []string, currency string) map[string]domain.PriceQuote {
	ctx, span := p.tracer.Start(ctx, "coingecko.simple-prices")
	defer span.End()

	if len(ids) == 0 {
		return nil
	}
	if err := p.limiter.Wait(ctx); err != nil {
		log.Printf("coingecko rate limit wait: %v", err)
		return nil
	}

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("vs_currencies", currency)
	params.Set("include_24hr_change", "true")
	params.Set("include_market_cap", "true")
	params.Set("include_24hr_vol", "true")

	// Response shape: {"bitcoin": {"usd": 97000, "usd_market_cap": ..., "usd_24h_vol": ..., "usd_24h_change": 2.34}, ...}
	var raw map[string]map[string]float64
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/simple/price", params, nil, &raw) {
		return nil
	}

	quotes := make(map[string]domain.PriceQuote, len(raw))
	for coin, row := range raw {
		value, ok := row[currency]
		if !ok {
			continue
		}
		quotes[coin] = domain.PriceQuote{
			CoinID:    coin,
			Currency:  currency,
			Value:     value,
			Change24h: row[currency+"_24h_change"],
			MarketCap: row[currency+"_market_cap"],
			Volume24h: row[currency+"_24h_vol"],
		}
	}
	return quotes
}

// Markets returns one page of the USD market listing in the given order.
func (p *CoinGeckoProvider) Markets(ctx context.Context, limit, page int, order domain.SortOrder) []domain.CoinMarket {
	ctx, span := p.tracer.Start(ctx, "coingecko.markets")
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		log.Printf("coingecko rate limit wait: %v", err)
		return nil
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", string(order))
	params.Set("per_page", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))
	params.Set("sparkline", "false")
	params.Set("price_change_percentage", "24h,7d")

	var raw []struct {
		ID            string  `json:"id"`
		Symbol        string  `json:"symbol"`
		Name          string  `json:"name"`
		Image         string  `json:"image"`
		CurrentPrice  float64 `json:"current_price"`
		MarketCap     float64 `json:"market_cap"`
		MarketCapRank int     `json:"market_cap_rank"`
		TotalVolume   float64 `json:"total_volume"`
		Change24h     float64 `json:"price_change_percentage_24h"`
		Change7d      float64 `json:"price_change_percentage_7d_in_currency"`
	}
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/coins/markets", params, nil, &raw) {
		return nil
	}

	markets := make([]domain.CoinMarket, 0, len(raw))
	for _, m := range raw {
		markets = append(markets, domain.CoinMarket{
			ID:            m.ID,
			Symbol:        m.Symbol,
			Name:          m.Name,
			Image:         m.Image,
			CurrentPrice:  m.CurrentPrice,
			MarketCap:     m.MarketCap,
			MarketCapRank: m.MarketCapRank,
			TotalVolume:   m.TotalVolume,
			Change24h:     m.Change24h,
			Change7d:      m.Change7d,
		})
	}
	return markets
}

// Search returns the coins matching a free-text query.
func (p *CoinGeckoProvider) Search(ctx context.Context, query string) []domain.SearchResult {
	ctx, span := p.tracer.Start(ctx, "coingecko.search")
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		log.Printf("coingecko rate limit wait: %v", err)
		return nil
	}

	params := url.Values{}
	params.Set("query", query)

	var raw struct {
		Coins []struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			Symbol        string `json:"symbol"`
			MarketCapRank int    `json:"market_cap_rank"`
			Thumb         string `json:"thumb"`
		} `json:"coins"`
	}
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/search", params, nil, &raw) {
		return nil
	}

	results := make([]domain.SearchResult, 0, len(raw.Coins))
	for _, c := range raw.Coins {
		results = append(results, domain.SearchResult{
			ID:            c.ID,
			Name:          c.Name,
			Symbol:        c.Symbol,
			MarketCapRank: c.MarketCapRank,
			Thumb:         c.Thumb,
		})
	}
	return results
}
