package provider

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"strings"

	"coinlens/internal/domain"
	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const cryptoCompareBaseURL = "https://min-api.cryptocompare.com/data"

// CryptoCompareProvider fetches daily price history from the CryptoCompare
// free API.
type CryptoCompareProvider struct {
	fetcher *fetch.Fetcher
	baseURL string
	tracer  trace.Tracer
}

func NewCryptoCompareProvider(tracer trace.Tracer) *CryptoCompareProvider {
	return &CryptoCompareProvider{
		fetcher: fetch.New(nil),
		baseURL: cryptoCompareBaseURL,
		tracer:  tracer,
	}
}

// History fetches up to days daily records for symbol and reshapes them
// into aligned price, market cap and volume series. Market cap is
// approximated as volumefrom * close; the endpoint does not report it.
func (p *CryptoCompareProvider) History(ctx context.Context, symbol string, days int) domain.HistorySeries {
	ctx, span := p.tracer.Start(ctx, "cryptocompare.history")
	defer span.End()

	params := url.Values{}
	params.Set("fsym", strings.ToUpper(symbol))
	params.Set("tsym", "USD")
	params.Set("limit", strconv.Itoa(days))

	series := domain.HistorySeries{
		Prices:       []domain.Point{},
		MarketCaps:   []domain.Point{},
		TotalVolumes: []domain.Point{},
	}

	var raw struct {
		Data struct {
			Data []json.RawMessage `json:"Data"`
		} `json:"Data"`
	}
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/v2/histoday", params, nil, &raw) {
		return series
	}

	for _, rec := range raw.Data.Data {
		var row struct {
			Time       int64   `json:"time"`
			Close      float64 `json:"close"`
			VolumeFrom float64 `json:"volumefrom"`
			VolumeTo   float64 `json:"volumeto"`
		}
		if err := json.Unmarshal(rec, &row); err != nil {
			log.Printf("skipping malformed history record for %s: %v", symbol, err)
			continue
		}
		ts := row.Time * 1000
		series.Prices = append(series.Prices, domain.Point{TimestampMS: ts, Value: row.Close})
		series.MarketCaps = append(series.MarketCaps, domain.Point{TimestampMS: ts, Value: row.VolumeFrom * row.Close})
		series.TotalVolumes = append(series.TotalVolumes, domain.Point{TimestampMS: ts, Value: row.VolumeTo})
	}
	if len(series.Prices) == 0 {
		log.Printf("no historical data found for %s", symbol)
	}
	return series
}
