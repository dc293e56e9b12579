package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBriefing godoc
// @Summary      Get an AI market briefing
// @Description  Returns a short model-written summary of current market data; requires OPENAI_API_KEY
// @Tags         briefing
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/briefing [get]
func (h *Handler) GetBriefing(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-briefing")
	defer span.End()

	if h.briefing == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "briefing is not configured; set OPENAI_API_KEY"})
		return
	}

	briefing, err := h.briefing.MarketBriefing(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"briefing": briefing})
}
