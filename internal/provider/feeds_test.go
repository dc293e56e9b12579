package provider

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"coinlens/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const alphaFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Alpha</title>
<item><title>AT&amp;T buys bitcoin</title><link>http://alpha.example/1</link><description>Big &amp; bold move</description><pubDate>Mon, 06 Sep 2021 16:45:00 GMT</pubDate></item>
<item><title></title><link>http://alpha.example/2</link></item>
<item><title>Never reached</title><link>http://alpha.example/3</link></item>
</channel></rss>`

const gammaFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Gamma</title>
<item><title>Markets wobble</title><link>http://gamma.example/1</link></item>
</channel></rss>`

func newFeedTestProvider(t *testing.T, sources []string, bodies map[string]string) *FeedProvider {
	t.Helper()
	p := NewFeedProvider(trace.NewNoopTracerProvider().Tracer("test"), sources)
	p.fetcher = fetch.New(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			body, ok := bodies[req.URL.Host]
			if !ok {
				t.Fatalf("unexpected host: %s", req.URL.Host)
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(body)),
				Header:     make(http.Header),
			}, nil
		}),
	})
	return p
}

func TestFeedProviderFetchSkipsBrokenFeeds(t *testing.T) {
	t.Parallel()

	sources := []string{
		"http://alpha.example/rss",
		"http://beta.example/feed",
		"http://gamma.example/rss",
	}
	p := newFeedTestProvider(t, sources, map[string]string{
		"alpha.example": alphaFeedXML,
		"beta.example":  "this is not a feed",
		"gamma.example": gammaFeedXML,
	})

	articles := p.Fetch(context.Background(), 6)
	// 6/3 = 2 per source; alpha contributes 2, beta none, gamma 1.
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d: %+v", len(articles), articles)
	}

	first := articles[0]
	if first.Title != "AT&T buys bitcoin" {
		t.Fatalf("title not unescaped: %q", first.Title)
	}
	if first.Description != "Big & bold move" {
		t.Fatalf("description not unescaped: %q", first.Description)
	}
	if first.PublishedAt != "Mon, 06 Sep 2021 16:45:00 GMT" {
		t.Fatalf("expected raw pubDate, got %q", first.PublishedAt)
	}
	if first.SourceDomain != "alpha.example" {
		t.Fatalf("unexpected domain: %q", first.SourceDomain)
	}

	if articles[1].Title != "No title" {
		t.Fatalf("expected placeholder title, got %q", articles[1].Title)
	}
	if articles[2].SourceDomain != "gamma.example" {
		t.Fatalf("expected gamma article last, got %+v", articles[2])
	}
}

func TestFeedProviderFetchLimitBelowSourceCount(t *testing.T) {
	t.Parallel()

	sources := []string{
		"http://alpha.example/rss",
		"http://beta.example/feed",
		"http://gamma.example/rss",
	}
	p := newFeedTestProvider(t, sources, map[string]string{
		"alpha.example": alphaFeedXML,
		"beta.example":  gammaFeedXML,
		"gamma.example": gammaFeedXML,
	})

	// 2/3 rounds down to zero items per source.
	if articles := p.Fetch(context.Background(), 2); len(articles) != 0 {
		t.Fatalf("expected no articles, got %d", len(articles))
	}
}

func TestFeedProviderDefaultSources(t *testing.T) {
	t.Parallel()

	p := NewFeedProvider(trace.NewNoopTracerProvider().Tracer("test"), nil)
	if len(p.sources) != len(DefaultFeedURLs) {
		t.Fatalf("expected default sources, got %+v", p.sources)
	}
}
