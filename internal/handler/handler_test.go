package handler

import (
	"context"
	"net/http/httptest"
	"testing"

	"coinlens/internal/cache"
	"coinlens/internal/domain"
	"coinlens/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("handler-test")

// newTestRouter builds a router over a real aggregator backed by stub
// providers, so handler tests cover the full cache/fetch path.
func newTestRouter(t *testing.T, p service.Providers, briefing BriefingSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	agg := service.NewAggregator(testTracer, cache.NewMemoryStore(cache.DefaultTTL), p)
	h := New(testTracer, agg, briefing)

	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

type stubMarkets struct {
	trending []domain.TrendingCoin
	quotes   map[string]domain.PriceQuote
	markets  []domain.CoinMarket
	results  []domain.SearchResult

	lastIDs      []string
	lastCurrency string
	lastLimit    int
	lastPage     int
	lastOrder    domain.SortOrder
	lastQuery    string
}

func (s *stubMarkets) Trending(ctx context.Context) []domain.TrendingCoin {
	return s.trending
}

func (s *stubMarkets) SimplePrices(ctx context.Context, ids []string, currency string) map[string]domain.PriceQuote {
	s.lastIDs = append([]string(nil), ids...)
	s.lastCurrency = currency
	return s.quotes
}

func (s *stubMarkets) Markets(ctx context.Context, limit, page int, order domain.SortOrder) []domain.CoinMarket {
	s.lastLimit = limit
	s.lastPage = page
	s.lastOrder = order
	return s.markets
}

func (s *stubMarkets) Search(ctx context.Context, query string) []domain.SearchResult {
	s.lastQuery = query
	return s.results
}

type stubHistory struct {
	series     domain.HistorySeries
	lastSymbol string
	lastDays   int
}

func (s *stubHistory) History(ctx context.Context, symbol string, days int) domain.HistorySeries {
	s.lastSymbol = symbol
	s.lastDays = days
	return s.series
}

type stubRates struct {
	rates map[string]float64
}

func (s *stubRates) Latest(ctx context.Context) map[string]float64 {
	return s.rates
}

type stubNFTs struct {
	assets     []domain.NFTAsset
	lastWallet string
	lastChain  string
}

func (s *stubNFTs) NFTs(ctx context.Context, wallet, chain string) []domain.NFTAsset {
	s.lastWallet = wallet
	s.lastChain = chain
	return s.assets
}

type stubPosts struct {
	posts          []domain.NewsPost
	lastFilter     string
	lastCurrencies string
}

func (s *stubPosts) Posts(ctx context.Context, filter, currencies string) []domain.NewsPost {
	s.lastFilter = filter
	s.lastCurrencies = currencies
	return s.posts
}

type stubFeeds struct {
	articles  []domain.Article
	lastLimit int
}

func (s *stubFeeds) Fetch(ctx context.Context, limit int) []domain.Article {
	s.lastLimit = limit
	return s.articles
}

type stubSentiment struct {
	reading domain.SentimentReading
}

func (s *stubSentiment) Latest(ctx context.Context) domain.SentimentReading {
	return s.reading
}
