package advisor

import (
	"fmt"
	"strings"

	"coinlens/internal/domain"
)

const briefingSystemPrompt = `You are a crypto market analyst. You turn aggregated market data into a short plain-language briefing.

Rules:
- Only use the data provided. Never fabricate numbers or headlines.
- If a section has no data, skip it rather than speculate.
- Lead with overall market direction, then notable movers, then sentiment, then at most two headlines.
- Keep the briefing under 150 words. No financial advice, no disclaimers.`

// BuildBriefingPrompt renders the aggregated snapshot as the user message
// for the briefing request.
func BuildBriefingPrompt(coins []domain.CoinMarket, sentiment domain.SentimentReading, articles []domain.Article) string {
	var sb strings.Builder

	if len(coins) > 0 {
		sb.WriteString("Top coins by market cap:\n")
		for _, c := range coins {
			sb.WriteString(fmt.Sprintf("  %s (%s): $%.2f (24h: %+.2f%%, 7d: %+.2f%%)\n",
				c.Name, strings.ToUpper(c.Symbol), c.CurrentPrice, c.Change24h, c.Change7d))
		}
	}

	if !sentiment.IsZero() {
		sb.WriteString(fmt.Sprintf("\nFear & Greed index: %d (%s)\n",
			sentiment.Value, sentiment.Classification))
	}

	if len(articles) > 0 {
		sb.WriteString("\nHeadlines:\n")
		for _, a := range articles {
			sb.WriteString(fmt.Sprintf("  %s (%s)\n", a.Title, a.SourceDomain))
		}
	}

	if sb.Len() == 0 {
		return "No market data currently available."
	}
	return sb.String()
}
