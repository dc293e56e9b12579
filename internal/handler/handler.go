package handler

import (
	"context"

	"coinlens/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// BriefingSource produces an LLM market briefing. The source is optional;
// a nil source disables the briefing endpoint.
type BriefingSource interface {
	MarketBriefing(ctx context.Context) (string, error)
}

type Handler struct {
	tracer   trace.Tracer
	agg      *service.Aggregator
	briefing BriefingSource
}

func New(tracer trace.Tracer, agg *service.Aggregator, briefing BriefingSource) *Handler {
	return &Handler{
		tracer:   tracer,
		agg:      agg,
		briefing: briefing,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/trending", h.GetTrending)
	r.GET("/api/prices", h.GetPrices)
	r.GET("/api/markets", h.GetMarkets)
	r.GET("/api/search", h.SearchCoins)
	r.GET("/api/history/:symbol", h.GetHistory)
	r.GET("/api/rates", h.GetRates)
	r.GET("/api/convert", h.Convert)
	r.GET("/api/nfts/:wallet", h.GetNFTs)
	r.GET("/api/news", h.GetNews)
	r.GET("/api/posts", h.GetPosts)
	r.GET("/api/sentiment", h.GetSentiment)
	r.GET("/api/briefing", h.GetBriefing)
}
