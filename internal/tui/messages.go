package tui

import "coinlens/internal/domain"

type marketsMsg struct {
	coins []domain.CoinMarket
}

type trendingMsg struct {
	coins []domain.TrendingCoin
}

type newsMsg struct {
	articles []domain.Article
}

type sentimentMsg struct {
	reading domain.SentimentReading
}

type ratesMsg struct {
	table domain.ConversionTable
}
