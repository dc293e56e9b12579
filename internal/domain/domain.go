package domain

import (
	"sort"
	"time"
)

// SortOrder selects how upstream market listings are ordered. The values
// are CoinGecko order parameters and are passed through unchanged.
type SortOrder string

const (
	OrderMarketCap   SortOrder = "market_cap_desc"
	OrderVolume      SortOrder = "volume_desc"
	OrderPriceChange SortOrder = "price_change_percentage_24h_desc"
)

// ParseSortOrder maps the short names used by consumers to upstream order
// parameters. Unknown names fall back to market cap.
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "volume":
		return OrderVolume
	case "price_change":
		return OrderPriceChange
	default:
		return OrderMarketCap
	}
}

// DefaultBasket is the set of coins the conversion table is built from.
var DefaultBasket = []string{"bitcoin", "ethereum", "binancecoin", "cardano", "solana"}

// CoinID maps ticker symbols to CoinGecko coin identifiers.
var CoinID = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"BNB":  "binancecoin",
	"ADA":  "cardano",
	"SOL":  "solana",
	"XRP":  "ripple",
	"DOGE": "dogecoin",
	"DOT":  "polkadot",
	"LTC":  "litecoin",
	"LINK": "chainlink",
}

// SupportedSymbols lists the tickers in CoinID, sorted for stable output.
var SupportedSymbols = func() []string {
	symbols := make([]string, 0, len(CoinID))
	for s := range CoinID {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}()

// PriceQuote is a single coin price in a single quote currency.
type PriceQuote struct {
	CoinID    string  `json:"coin_id"`
	Currency  string  `json:"currency"`
	Value     float64 `json:"value"`
	Change24h float64 `json:"change_24h"`
	MarketCap float64 `json:"market_cap"`
	Volume24h float64 `json:"volume_24h"`
}

// CoinMarket is one row of a market listing.
type CoinMarket struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	CurrentPrice  float64 `json:"current_price"`
	MarketCap     float64 `json:"market_cap"`
	MarketCapRank int     `json:"market_cap_rank"`
	TotalVolume   float64 `json:"total_volume"`
	Change24h     float64 `json:"price_change_percentage_24h"`
	Change7d      float64 `json:"price_change_percentage_7d"`
}

// TrendingCoin is an entry from the trending search list.
type TrendingCoin struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	MarketCapRank int     `json:"market_cap_rank"`
	Thumb         string  `json:"thumb"`
	PriceBTC      float64 `json:"price_btc"`
	Score         int     `json:"score"`
}

// SearchResult is a coin matched by a free-text search.
type SearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}

// ConversionTable maps coin IDs to per-currency values. The table is
// derived from USD quotes and a fiat rate snapshot and shares the cache
// lifecycle of its inputs.
type ConversionTable map[string]map[string]float64

// Rate returns the conversion rate for a coin/currency pair.
func (t ConversionTable) Rate(from, to string) (float64, bool) {
	currencies, ok := t[from]
	if !ok {
		return 0, false
	}
	rate, ok := currencies[to]
	return rate, ok
}

// Conversion is the result of applying a rate from the conversion table.
type Conversion struct {
	From      string  `json:"from_currency"`
	To        string  `json:"to_currency"`
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted_amount"`
}

// Article is a normalized news item from an RSS feed. PublishedAt keeps
// the feed's own timestamp string; feeds disagree on formats and the
// consumers only display it.
type Article struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	PublishedAt  string `json:"published_at"`
	SourceDomain string `json:"domain"`
}

// NewsPost is a curated post from the news aggregator API.
type NewsPost struct {
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Domain      string   `json:"domain"`
	PublishedAt string   `json:"published_at"`
	Currencies  []string `json:"currencies,omitempty"`
}

// NFTAsset is a normalized NFT held by a wallet.
type NFTAsset struct {
	Identifier    string `json:"identifier"`
	Collection    string `json:"collection"`
	Contract      string `json:"contract"`
	TokenStandard string `json:"token_standard"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	OpenSeaURL    string `json:"opensea_url"`
}

// SentimentReading is one fear & greed index observation.
type SentimentReading struct {
	Value            int       `json:"value"`
	Classification   string    `json:"classification"`
	Timestamp        time.Time `json:"timestamp"`
	TimeUntilUpdateS int       `json:"time_until_update_s"`
}

// IsZero reports whether the reading carries no data.
func (r SentimentReading) IsZero() bool {
	return r.Value == 0 && r.Classification == ""
}
