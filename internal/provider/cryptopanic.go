package provider

import (
	"context"
	"log"
	"net/url"

	"coinlens/internal/domain"
	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const cryptoPanicBaseURL = "https://cryptopanic.com/api/v1"

// CryptoPanicProvider fetches curated posts from the CryptoPanic API.
type CryptoPanicProvider struct {
	fetcher *fetch.Fetcher
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewCryptoPanicProvider(tracer trace.Tracer, apiKey string) *CryptoPanicProvider {
	return &CryptoPanicProvider{
		fetcher: fetch.New(nil),
		baseURL: cryptoPanicBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

// Posts returns posts matching filter (news, rising, hot, ...) tagged with
// the given comma separated currency codes.
func (p *CryptoPanicProvider) Posts(ctx context.Context, filter, currencies string) []domain.NewsPost {
	ctx, span := p.tracer.Start(ctx, "cryptopanic.posts")
	defer span.End()

	if p.apiKey == "" {
		log.Println("CryptoPanic API key missing. Set CRYPTOPANIC_API_KEY.")
		return nil
	}
	if filter == "" {
		filter = "news"
	}
	if currencies == "" {
		currencies = "BTC"
	}

	params := url.Values{}
	params.Set("auth_token", p.apiKey)
	params.Set("filter", filter)
	params.Set("currencies", currencies)

	var raw struct {
		Results []struct {
			Kind   string `json:"kind"`
			Title  string `json:"title"`
			URL    string `json:"url"`
			Source struct {
				Domain string `json:"domain"`
			} `json:"source"`
			PublishedAt string `json:"published_at"`
			Currencies  []struct {
				Code string `json:"code"`
			} `json:"currencies"`
		} `json:"results"`
	}
	if !p.fetcher.GetJSON(ctx, p.baseURL+"/posts/", params, nil, &raw) {
		return nil
	}

	posts := make([]domain.NewsPost, 0, len(raw.Results))
	for _, r := range raw.Results {
		var codes []string
		for _, c := range r.Currencies {
			codes = append(codes, c.Code)
		}
		posts = append(posts, domain.NewsPost{
			Kind:        r.Kind,
			Title:       r.Title,
			URL:         r.URL,
			Domain:      r.Source.Domain,
			PublishedAt: r.PublishedAt,
			Currencies:  codes,
		})
	}
	return posts
}
