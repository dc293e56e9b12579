package handler

import (
	"net/http"
	"strconv"
	"strings"

	"coinlens/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetTrending godoc
// @Summary      Get trending coins
// @Description  Returns the coins currently trending on CoinGecko search
// @Tags         markets
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/trending [get]
func (h *Handler) GetTrending(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-trending")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"coins": h.agg.TrendingCoins(ctx)})
}

// GetPrices godoc
// @Summary      Get current prices for a set of coins
// @Description  Returns quotes for the requested coin IDs; coins without an upstream quote are absent from the map
// @Tags         markets
// @Produce      json
// @Param        ids       query  string  true   "Comma separated coin IDs (e.g. bitcoin,ethereum)"
// @Param        currency  query  string  false  "Quote currency"  default(usd)
// @Success      200  {object}  map[string]domain.PriceQuote
// @Failure      400  {object}  map[string]string
// @Router       /api/prices [get]
func (h *Handler) GetPrices(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-prices")
	defer span.End()

	ids := splitList(c.Query("ids"))
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	quotes := h.agg.CoinPrices(ctx, ids, c.DefaultQuery("currency", "usd"))
	if quotes == nil {
		quotes = map[string]domain.PriceQuote{}
	}
	c.JSON(http.StatusOK, quotes)
}

// GetMarkets godoc
// @Summary      Get a page of the market listing
// @Description  Returns top coins ordered by market cap, volume or 24h price change
// @Tags         markets
// @Produce      json
// @Param        limit  query  int     false  "Coins per page (max 250)"  default(10)
// @Param        page   query  int     false  "Page number"  default(1)
// @Param        order  query  string  false  "Sort order (market_cap, volume, price_change)"  default(market_cap)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-markets")
	defer span.End()

	limit := 10
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 250 {
			limit = n
		}
	}
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	order := domain.ParseSortOrder(c.DefaultQuery("order", "market_cap"))
	span.SetAttributes(attribute.String("order", string(order)))

	c.JSON(http.StatusOK, gin.H{"coins": h.agg.TopCoins(ctx, limit, page, order)})
}

// SearchCoins godoc
// @Summary      Search coins by name or symbol
// @Tags         markets
// @Produce      json
// @Param        q  query  string  true  "Search query"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/search [get]
func (h *Handler) SearchCoins(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.search-coins")
	defer span.End()

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}
	span.SetAttributes(attribute.String("query", query))

	c.JSON(http.StatusOK, gin.H{"coins": h.agg.SearchCoins(ctx, query)})
}

// GetHistory godoc
// @Summary      Get daily price history for a symbol
// @Description  Returns aligned price, market cap and volume series as (timestampMillis, value) pairs
// @Tags         markets
// @Produce      json
// @Param        symbol  path   string  true   "Ticker symbol (e.g. BTC)"
// @Param        days    query  int     false  "Number of days (max 365)"  default(30)
// @Success      200  {object}  domain.HistorySeries
// @Router       /api/history/{symbol} [get]
func (h *Handler) GetHistory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-history")
	defer span.End()

	symbol := strings.ToUpper(c.Param("symbol"))
	span.SetAttributes(attribute.String("symbol", symbol))

	days := 30
	if d := c.Query("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	c.JSON(http.StatusOK, h.agg.CoinHistory(ctx, symbol, days))
}

// splitList splits a comma separated query value into trimmed, lowercased
// parts, dropping empties.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
