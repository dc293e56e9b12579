package service

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"coinlens/internal/cache"
	"coinlens/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// MarketProvider serves live market data: trending coins, spot quotes,
// paged listings and free-text search.
type MarketProvider interface {
	Trending(ctx context.Context) []domain.TrendingCoin
	SimplePrices(ctx context.Context, ids []string, currency string) map[string]domain.PriceQuote
	Markets(ctx context.Context, limit, page int, order domain.SortOrder) []domain.CoinMarket
	Search(ctx context.Context, query string) []domain.SearchResult
}

type HistoryProvider interface {
	History(ctx context.Context, symbol string, days int) domain.HistorySeries
}

type RateProvider interface {
	Latest(ctx context.Context) map[string]float64
}

type NFTProvider interface {
	NFTs(ctx context.Context, wallet, chain string) []domain.NFTAsset
}

type PostProvider interface {
	Posts(ctx context.Context, filter, currencies string) []domain.NewsPost
}

type FeedSource interface {
	Fetch(ctx context.Context, limit int) []domain.Article
}

type SentimentProvider interface {
	Latest(ctx context.Context) domain.SentimentReading
}

// Providers bundles the upstream adapters the aggregator reads from.
type Providers struct {
	Markets   MarketProvider
	History   HistoryProvider
	Rates     RateProvider
	NFTs      NFTProvider
	Posts     PostProvider
	Feeds     FeedSource
	Sentiment SentimentProvider
}

// Aggregator is the single query surface over all upstream adapters. Every
// operation checks the cache first, fetches on a miss and stores whatever
// came back. Empty results are stored but never served as hits, so a
// transient upstream failure heals on the next call instead of after the
// TTL. Upstream failure surfaces as an empty value, never as an error.
type Aggregator struct {
	tracer trace.Tracer
	store  cache.Store
	p      Providers
}

func NewAggregator(tracer trace.Tracer, store cache.Store, p Providers) *Aggregator {
	return &Aggregator{
		tracer: tracer,
		store:  store,
		p:      p,
	}
}

// TrendingCoins returns the coins currently trending on search.
func (a *Aggregator) TrendingCoins(ctx context.Context) []domain.TrendingCoin {
	ctx, span := a.tracer.Start(ctx, "aggregator.trending-coins")
	defer span.End()

	key := cache.Key("trending")
	var coins []domain.TrendingCoin
	if a.readCache(ctx, key, &coins) && len(coins) > 0 {
		return coins
	}
	coins = a.p.Markets.Trending(ctx)
	a.writeCache(ctx, key, coins)
	return coins
}

// CoinPrices returns quotes for the given coin IDs. The ID list is sorted
// before both the cache key and the upstream call, so permutations of the
// same set share one cache entry.
func (a *Aggregator) CoinPrices(ctx context.Context, ids []string, currency string) map[string]domain.PriceQuote {
	ctx, span := a.tracer.Start(ctx, "aggregator.coin-prices")
	defer span.End()

	if len(ids) == 0 {
		return nil
	}
	currency = strings.ToLower(currency)
	if currency == "" {
		currency = "usd"
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	key := cache.Key("prices", strings.Join(sorted, ","), currency)
	var quotes map[string]domain.PriceQuote
	if a.readCache(ctx, key, &quotes) && len(quotes) > 0 {
		return quotes
	}
	quotes = a.p.Markets.SimplePrices(ctx, sorted, currency)
	a.writeCache(ctx, key, quotes)
	return quotes
}

// TopCoins returns one page of the market listing.
func (a *Aggregator) TopCoins(ctx context.Context, limit, page int, order domain.SortOrder) []domain.CoinMarket {
	ctx, span := a.tracer.Start(ctx, "aggregator.top-coins")
	defer span.End()

	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	if order == "" {
		order = domain.OrderMarketCap
	}

	key := cache.Key("markets", strconv.Itoa(limit), strconv.Itoa(page), string(order))
	var markets []domain.CoinMarket
	if a.readCache(ctx, key, &markets) && len(markets) > 0 {
		return markets
	}
	markets = a.p.Markets.Markets(ctx, limit, page, order)
	a.writeCache(ctx, key, markets)
	return markets
}

// SearchCoins returns coins matching a free-text query.
func (a *Aggregator) SearchCoins(ctx context.Context, query string) []domain.SearchResult {
	ctx, span := a.tracer.Start(ctx, "aggregator.search-coins")
	defer span.End()

	key := cache.Key("search", query)
	var results []domain.SearchResult
	if a.readCache(ctx, key, &results) && len(results) > 0 {
		return results
	}
	results = a.p.Markets.Search(ctx, query)
	a.writeCache(ctx, key, results)
	return results
}

// CoinHistory returns aligned daily price, market cap and volume series.
func (a *Aggregator) CoinHistory(ctx context.Context, symbol string, days int) domain.HistorySeries {
	ctx, span := a.tracer.Start(ctx, "aggregator.coin-history")
	defer span.End()

	if days <= 0 {
		days = 30
	}
	symbol = strings.ToUpper(symbol)

	key := cache.Key("history", symbol, strconv.Itoa(days))
	var series domain.HistorySeries
	if a.readCache(ctx, key, &series) && !series.IsEmpty() {
		return series
	}
	series = a.p.History.History(ctx, symbol, days)
	a.writeCache(ctx, key, series)
	return series
}

// ExchangeRates builds a conversion table for the reference basket quoted
// in USD, EUR, GBP and JPY. The USD leg comes from CoinPrices through the
// ordinary caching path; fiat legs are derived from a rate snapshot, with
// a missing fiat rate falling back to 1. Coins without a USD quote are
// left out of the table.
func (a *Aggregator) ExchangeRates(ctx context.Context) domain.ConversionTable {
	ctx, span := a.tracer.Start(ctx, "aggregator.exchange-rates")
	defer span.End()

	key := cache.Key("rates")
	var table domain.ConversionTable
	if a.readCache(ctx, key, &table) && len(table) > 0 {
		return table
	}

	quotes := a.CoinPrices(ctx, domain.DefaultBasket, "usd")
	fiat := a.p.Rates.Latest(ctx)

	table = domain.ConversionTable{}
	for _, coin := range domain.DefaultBasket {
		quote, ok := quotes[coin]
		if !ok {
			log.Printf("unable to get USD price for %s", coin)
			continue
		}
		table[coin] = map[string]float64{
			"usd": quote.Value,
			"eur": round(quote.Value*fiatRate(fiat, "EUR"), 4),
			"gbp": round(quote.Value*fiatRate(fiat, "GBP"), 4),
			"jpy": round(quote.Value*fiatRate(fiat, "JPY"), 2),
		}
	}
	a.writeCache(ctx, key, table)
	return table
}

// Convert applies a conversion table rate to an amount. The bool is false
// when the pair is not in the table.
func (a *Aggregator) Convert(ctx context.Context, from, to string, amount float64) (domain.Conversion, bool) {
	ctx, span := a.tracer.Start(ctx, "aggregator.convert")
	defer span.End()

	from = strings.ToLower(from)
	to = strings.ToLower(to)

	rate, ok := a.ExchangeRates(ctx).Rate(from, to)
	if !ok {
		return domain.Conversion{}, false
	}
	return domain.Conversion{
		From:      from,
		To:        to,
		Amount:    amount,
		Rate:      rate,
		Converted: amount * rate,
	}, true
}

// NFTsByWallet returns the NFTs a wallet holds on the given chain.
func (a *Aggregator) NFTsByWallet(ctx context.Context, wallet, chain string) []domain.NFTAsset {
	ctx, span := a.tracer.Start(ctx, "aggregator.nfts-by-wallet")
	defer span.End()

	if chain == "" {
		chain = "ethereum"
	}

	key := cache.Key("nfts", chain, wallet)
	var assets []domain.NFTAsset
	if a.readCache(ctx, key, &assets) && len(assets) > 0 {
		return assets
	}
	assets = a.p.NFTs.NFTs(ctx, wallet, chain)
	a.writeCache(ctx, key, assets)
	return assets
}

// News returns up to limit articles drawn evenly from the RSS sources.
func (a *Aggregator) News(ctx context.Context, limit int) []domain.Article {
	ctx, span := a.tracer.Start(ctx, "aggregator.news")
	defer span.End()

	if limit <= 0 {
		limit = 20
	}

	key := cache.Key("news", strconv.Itoa(limit))
	var articles []domain.Article
	if a.readCache(ctx, key, &articles) && len(articles) > 0 {
		return articles
	}
	articles = a.p.Feeds.Fetch(ctx, limit)
	a.writeCache(ctx, key, articles)
	return articles
}

// Posts returns curated posts from the news aggregator API.
func (a *Aggregator) Posts(ctx context.Context, filter, currencies string) []domain.NewsPost {
	ctx, span := a.tracer.Start(ctx, "aggregator.posts")
	defer span.End()

	if filter == "" {
		filter = "news"
	}
	if currencies == "" {
		currencies = "BTC"
	}

	key := cache.Key("posts", filter, currencies)
	var posts []domain.NewsPost
	if a.readCache(ctx, key, &posts) && len(posts) > 0 {
		return posts
	}
	posts = a.p.Posts.Posts(ctx, filter, currencies)
	a.writeCache(ctx, key, posts)
	return posts
}

// SentimentIndex returns the latest fear & greed reading.
func (a *Aggregator) SentimentIndex(ctx context.Context) domain.SentimentReading {
	ctx, span := a.tracer.Start(ctx, "aggregator.sentiment-index")
	defer span.End()

	key := cache.Key("feargreed")
	var reading domain.SentimentReading
	if a.readCache(ctx, key, &reading) && !reading.IsZero() {
		return reading
	}
	reading = a.p.Sentiment.Latest(ctx)
	a.writeCache(ctx, key, reading)
	return reading
}

func (a *Aggregator) readCache(ctx context.Context, key string, into any) bool {
	data, ok := a.store.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, into); err != nil {
		log.Printf("discarding undecodable cache entry %s: %v", key, err)
		return false
	}
	return true
}

func (a *Aggregator) writeCache(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode error for %s: %v", key, err)
		return
	}
	a.store.Set(ctx, key, data)
}

func fiatRate(rates map[string]float64, code string) float64 {
	if rate, ok := rates[code]; ok {
		return rate
	}
	return 1
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
