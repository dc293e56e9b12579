package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetNews godoc
// @Summary      Get recent news articles
// @Description  Returns articles drawn evenly from the configured RSS feeds
// @Tags         news
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of articles (max 100)"  default(20)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-news")
	defer span.End()

	limit := 20
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, gin.H{"articles": h.agg.News(ctx, limit)})
}

// GetPosts godoc
// @Summary      Get curated posts from the news aggregator
// @Description  Requires CRYPTOPANIC_API_KEY; returns an empty list without it
// @Tags         news
// @Produce      json
// @Param        filter      query  string  false  "Post filter (news, rising, hot)"  default(news)
// @Param        currencies  query  string  false  "Comma separated currency codes"  default(BTC)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/posts [get]
func (h *Handler) GetPosts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-posts")
	defer span.End()

	filter := c.DefaultQuery("filter", "news")
	currencies := c.DefaultQuery("currencies", "BTC")
	span.SetAttributes(attribute.String("filter", filter))

	c.JSON(http.StatusOK, gin.H{"posts": h.agg.Posts(ctx, filter, currencies)})
}

// GetNFTs godoc
// @Summary      Get NFTs held by a wallet
// @Description  Requires OPENSEA_API_KEY; returns an empty list without it
// @Tags         nfts
// @Produce      json
// @Param        wallet  path   string  true   "Wallet address"
// @Param        chain   query  string  false  "Chain name"  default(ethereum)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/nfts/{wallet} [get]
func (h *Handler) GetNFTs(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-nfts")
	defer span.End()

	wallet := c.Param("wallet")
	chain := c.DefaultQuery("chain", "ethereum")
	span.SetAttributes(attribute.String("chain", chain))

	c.JSON(http.StatusOK, gin.H{"nfts": h.agg.NFTsByWallet(ctx, wallet, chain)})
}

// GetSentiment godoc
// @Summary      Get the latest fear & greed reading
// @Tags         sentiment
// @Produce      json
// @Success      200  {object}  domain.SentimentReading
// @Router       /api/sentiment [get]
func (h *Handler) GetSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-sentiment")
	defer span.End()

	c.JSON(http.StatusOK, h.agg.SentimentIndex(ctx))
}
