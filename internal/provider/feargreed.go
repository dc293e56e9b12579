package provider

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"coinlens/internal/domain"
	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const fearGreedBaseURL = "https://api.alternative.me"

// FearGreedProvider fetches the crypto Fear & Greed index from
// alternative.me.
type FearGreedProvider struct {
	fetcher *fetch.Fetcher
	baseURL string
	tracer  trace.Tracer
}

func NewFearGreedProvider(tracer trace.Tracer) *FearGreedProvider {
	return &FearGreedProvider{
		fetcher: fetch.New(nil),
		baseURL: fearGreedBaseURL,
		tracer:  tracer,
	}
}

// Latest returns the most recent index reading, or a zero reading when the
// API is unreachable or returns something unparseable.
func (p *FearGreedProvider) Latest(ctx context.Context) domain.SentimentReading {
	ctx, span := p.tracer.Start(ctx, "feargreed.latest")
	defer span.End()

	var raw struct {
		Data []struct {
			Value            string `json:"value"`
			Classification   string `json:"value_classification"`
			Timestamp        string `json:"timestamp"`
			TimeUntilUpdateS string `json:"time_until_update"`
		} `json:"data"`
	}
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/fng", nil, nil, &raw) {
		return domain.SentimentReading{}
	}
	if len(raw.Data) == 0 {
		log.Println("fear & greed response has no rows")
		return domain.SentimentReading{}
	}

	row := raw.Data[0]
	value, err := strconv.Atoi(strings.TrimSpace(row.Value))
	if err != nil {
		log.Printf("parse fear & greed value %q: %v", row.Value, err)
		return domain.SentimentReading{}
	}

	reading := domain.SentimentReading{
		Value:          value,
		Classification: row.Classification,
	}
	if ts, err := strconv.ParseInt(strings.TrimSpace(row.Timestamp), 10, 64); err == nil {
		// Some mirrors report milliseconds.
		if ts > 1_000_000_000_000 {
			ts = ts / 1000
		}
		reading.Timestamp = time.Unix(ts, 0).UTC()
	}
	if n, err := strconv.Atoi(strings.TrimSpace(row.TimeUntilUpdateS)); err == nil && n >= 0 {
		reading.TimeUntilUpdateS = n
	}
	return reading
}
