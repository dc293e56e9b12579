package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"coinlens/internal/domain"
	"coinlens/internal/service"

	tele "gopkg.in/telebot.v3"
)

// StartTelegramBot wires the bot commands to the aggregator and starts
// long polling. Without TELEGRAM_BOT_TOKEN the bot is skipped entirely.
func StartTelegramBot(agg *service.Aggregator) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/price", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(fmt.Sprintf("Usage: /price BTC\nSupported: %s", strings.Join(domain.SupportedSymbols, ", ")))
		}
		symbol := strings.ToUpper(args[0])
		coinID, ok := domain.CoinID[symbol]
		if !ok {
			return c.Send(fmt.Sprintf("Unknown symbol: %s\nSupported: %s", symbol, strings.Join(domain.SupportedSymbols, ", ")))
		}
		quotes := agg.CoinPrices(context.Background(), []string{coinID}, "usd")
		quote, ok := quotes[coinID]
		if !ok {
			return c.Send(fmt.Sprintf("No price available for %s right now, try again later", symbol))
		}
		return c.Send(formatQuote(symbol, quote))
	})

	b.Handle("/top", func(c tele.Context) error {
		limit := 10
		if args := c.Args(); len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil && n > 0 && n <= 25 {
				limit = n
			}
		}
		markets := agg.TopCoins(context.Background(), limit, 1, domain.OrderMarketCap)
		if len(markets) == 0 {
			return c.Send("Market data unavailable right now, try again later")
		}
		return c.Send(formatMarkets(markets))
	})

	b.Handle("/news", func(c tele.Context) error {
		articles := agg.News(context.Background(), 6)
		if len(articles) == 0 {
			return c.Send("No headlines available right now, try again later")
		}
		return c.Send(formatArticles(articles))
	})

	b.Handle("/fng", func(c tele.Context) error {
		reading := agg.SentimentIndex(context.Background())
		if reading.IsZero() {
			return c.Send("Fear & Greed index unavailable right now, try again later")
		}
		return c.Send(formatSentiment(reading))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatQuote(symbol string, q domain.PriceQuote) string {
	return fmt.Sprintf(
		"%s\nPrice: $%.2f\n24h Change: %.2f%%\n24h Volume: $%.0f",
		symbol, q.Value, q.Change24h, q.Volume24h,
	)
}

func formatMarkets(markets []domain.CoinMarket) string {
	var sb strings.Builder
	sb.WriteString("Top coins by market cap\n")
	for i, m := range markets {
		sb.WriteString(fmt.Sprintf("%d. %s: $%.2f (%+.2f%%)\n", i+1, strings.ToUpper(m.Symbol), m.CurrentPrice, m.Change24h))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatArticles(articles []domain.Article) string {
	var sb strings.Builder
	sb.WriteString("Latest headlines\n")
	for _, a := range articles {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", a.Title, a.SourceDomain))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatSentiment(r domain.SentimentReading) string {
	return fmt.Sprintf("Fear & Greed index: %d (%s)", r.Value, r.Classification)
}
