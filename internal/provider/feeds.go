package provider

import (
	"context"
	"html"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"coinlens/internal/domain"
	"coinlens/internal/fetch"

	"github.com/mmcdole/gofeed"
	"go.opentelemetry.io/otel/trace"
)

// DefaultFeedURLs are the news sources polled when NEWS_FEEDS is not set.
var DefaultFeedURLs = []string{
	"https://feeds.feedburner.com/coindesk/CoinDesk",
	"https://cointelegraph.com/rss",
	"https://decrypt.co/feed",
}

// FeedProvider aggregates headlines from a set of RSS feeds. Feeds are
// fetched concurrently and a broken feed only loses its own slice of the
// result.
type FeedProvider struct {
	fetcher *fetch.Fetcher
	parser  *gofeed.Parser
	sources []string
	tracer  trace.Tracer
}

func NewFeedProvider(tracer trace.Tracer, sources []string) *FeedProvider {
	if len(sources) == 0 {
		sources = DefaultFeedURLs
	}
	return &FeedProvider{
		fetcher: fetch.New(&http.Client{Timeout: 5 * time.Second}),
		parser:  gofeed.NewParser(),
		sources: sources,
		tracer:  tracer,
	}
}

// Fetch pulls up to limit articles split evenly across the configured
// sources, preserving source order.
func (p *FeedProvider) Fetch(ctx context.Context, limit int) []domain.Article {
	ctx, span := p.tracer.Start(ctx, "feeds.fetch")
	defer span.End()

	if limit <= 0 {
		limit = 20
	}
	perSource := limit / len(p.sources)

	batches := make([][]domain.Article, len(p.sources))
	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(slot int, source string) {
			defer wg.Done()
			batches[slot] = p.fetchOne(ctx, source, perSource)
		}(i, src)
	}
	wg.Wait()

	articles := make([]domain.Article, 0, limit)
	for _, batch := range batches {
		articles = append(articles, batch...)
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}

func (p *FeedProvider) fetchOne(ctx context.Context, source string, max int) []domain.Article {
	headers := http.Header{}
	headers.Set("Accept", "application/rss+xml, application/xml, text/xml")

	body, ok := p.fetcher.Get(ctx, source, nil, headers)
	if !ok {
		return nil
	}
	feed, err := p.parser.ParseString(string(body))
	if err != nil {
		log.Printf("error parsing feed %s: %v", source, err)
		return nil
	}

	items := feed.Items
	if len(items) > max {
		items = items[:max]
	}
	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = "No title"
		} else {
			title = html.UnescapeString(title)
		}
		articles = append(articles, domain.Article{
			Title:        title,
			URL:          strings.TrimSpace(item.Link),
			Description:  html.UnescapeString(strings.TrimSpace(item.Description)),
			PublishedAt:  strings.TrimSpace(item.Published),
			SourceDomain: feedDomain(source),
		})
	}
	return articles
}

func feedDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
