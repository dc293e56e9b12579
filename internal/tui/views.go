package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"coinlens/internal/domain"
)

func marketTableRows(coins []domain.CoinMarket) []table.Row {
	rows := make([]table.Row, 0, len(coins))
	for _, c := range coins {
		rank := "-"
		if c.MarketCapRank > 0 {
			rank = strconv.Itoa(c.MarketCapRank)
		}
		rows = append(rows, table.Row{
			rank,
			truncateStr(c.Name, 18),
			strings.ToUpper(c.Symbol),
			fmt.Sprintf("$%.2f", c.CurrentPrice),
			fmt.Sprintf("%+.2f%%", c.Change24h),
			fmt.Sprintf("%+.2f%%", c.Change7d),
			compactUSD(c.MarketCap),
			compactUSD(c.TotalVolume),
		})
	}
	return rows
}

func renderTrending(coins []domain.TrendingCoin, width int) string {
	if len(coins) == 0 {
		return placeholderStyle.Render("No trending coins")
	}

	var b strings.Builder
	for i, c := range coins {
		rank := "unranked"
		if c.MarketCapRank > 0 {
			rank = fmt.Sprintf("rank #%d", c.MarketCapRank)
		}
		b.WriteString(fmt.Sprintf("%3d. ", i+1))
		b.WriteString(itemTitleStyle.Render(truncateStr(c.Name, width-30)))
		b.WriteString(" " + itemSourceStyle.Render(strings.ToUpper(c.Symbol)))
		b.WriteString(" " + itemTimeStyle.Render("· "+rank))
		if i < len(coins)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderNews(articles []domain.Article, cursor, height, width int) string {
	if len(articles) == 0 {
		return placeholderStyle.Render("No articles")
	}
	if width < 10 {
		width = 30
	}

	// Each item is a title line plus a meta line.
	itemHeight := 2
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		a := articles[i]
		if i == cursor {
			b.WriteString(itemSelectedStyle.Render("> " + truncateStr(a.Title, width-4)))
		} else {
			b.WriteString(itemTitleStyle.Render("  " + truncateStr(a.Title, width-4)))
		}
		b.WriteString("\n  ")
		b.WriteString(itemSourceStyle.Render(a.SourceDomain))
		if a.PublishedAt != "" {
			b.WriteString(" " + itemTimeStyle.Render("· "+a.PublishedAt))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSentiment(r domain.SentimentReading, width int) string {
	if r.IsZero() {
		return placeholderStyle.Render("No sentiment data")
	}

	barWidth := 40
	if width > 0 && width < barWidth+4 {
		barWidth = width - 4
	}
	if barWidth < 10 {
		barWidth = 10
	}
	filled := r.Value * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}

	barStyle := lossStyle
	if r.Value >= 55 {
		barStyle = gainStyle
	} else if r.Value >= 45 {
		barStyle = itemTimeStyle
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		itemTimeStyle.Render(strings.Repeat("░", barWidth-filled))

	var b strings.Builder
	b.WriteString(itemTitleStyle.Render("Fear & Greed Index"))
	b.WriteString("\n\n  ")
	b.WriteString(bar)
	b.WriteString("\n\n  ")
	b.WriteString(sentimentValueStyle.Render(fmt.Sprintf("%d", r.Value)))
	b.WriteString(" " + barStyle.Render(r.Classification))
	if !r.Timestamp.IsZero() {
		b.WriteString("\n  ")
		b.WriteString(itemTimeStyle.Render("as of " + r.Timestamp.UTC().Format("Jan 2 15:04 UTC")))
	}
	if r.TimeUntilUpdateS > 0 {
		b.WriteString("\n  ")
		b.WriteString(itemTimeStyle.Render(fmt.Sprintf("next update in %dm", r.TimeUntilUpdateS/60)))
	}
	return b.String()
}

func renderRates(t domain.ConversionTable) string {
	if len(t) == 0 {
		return placeholderStyle.Render("No rates")
	}

	var b strings.Builder
	b.WriteString(ratesHeaderStyle.Render(fmt.Sprintf(" %-14s %16s %16s %16s %16s", "Coin", "USD", "EUR", "GBP", "JPY")))
	for _, coin := range domain.DefaultBasket {
		row, ok := t[coin]
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(" %-14s %16.2f %16.4f %16.4f %16.2f",
			coin, row["usd"], row["eur"], row["gbp"], row["jpy"]))
	}
	return b.String()
}

// compactUSD renders a dollar amount with a magnitude suffix so market
// caps fit in a table column.
func compactUSD(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.1fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
