package provider

import (
	"context"
	"net/url"

	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const exchangeRateBaseURL = "https://api.exchangerate.host"

// ExchangeRateProvider fetches fiat exchange rates from exchangerate.host.
type ExchangeRateProvider struct {
	fetcher *fetch.Fetcher
	baseURL string
	tracer  trace.Tracer
}

func NewExchangeRateProvider(tracer trace.Tracer) *ExchangeRateProvider {
	return &ExchangeRateProvider{
		fetcher: fetch.New(nil),
		baseURL: exchangeRateBaseURL,
		tracer:  tracer,
	}
}

// Latest returns fiat rates quoted against USD, keyed by currency code.
func (p *ExchangeRateProvider) Latest(ctx context.Context) map[string]float64 {
	ctx, span := p.tracer.Start(ctx, "exchangerate.latest")
	defer span.End()

	params := url.Values{}
	params.Set("base", "USD")

	var raw struct {
		Rates map[string]float64 `json:"rates"`
	}
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/latest", params, nil, &raw) {
		return nil
	}
	return raw.Rates
}
