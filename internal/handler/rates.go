package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetRates godoc
// @Summary      Get the conversion table
// @Description  Returns reference coins quoted in USD, EUR, GBP and JPY
// @Tags         converter
// @Produce      json
// @Success      200  {object}  domain.ConversionTable
// @Router       /api/rates [get]
func (h *Handler) GetRates(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-rates")
	defer span.End()

	c.JSON(http.StatusOK, h.agg.ExchangeRates(ctx))
}

// Convert godoc
// @Summary      Convert an amount between a coin and a currency
// @Tags         converter
// @Produce      json
// @Param        from    query  string  false  "Source coin ID"  default(bitcoin)
// @Param        to      query  string  false  "Target currency"  default(usd)
// @Param        amount  query  number  false  "Amount to convert"  default(1)
// @Success      200  {object}  domain.Conversion
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/convert [get]
func (h *Handler) Convert(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.convert")
	defer span.End()

	from := c.DefaultQuery("from", "bitcoin")
	to := c.DefaultQuery("to", "usd")
	span.SetAttributes(attribute.String("from", from), attribute.String("to", to))

	amount := 1.0
	if a := c.Query("amount"); a != "" {
		n, err := strconv.ParseFloat(a, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
			return
		}
		amount = n
	}

	conv, ok := h.agg.Convert(ctx, from, to, amount)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown conversion pair: " + from + " to " + to})
		return
	}
	c.JSON(http.StatusOK, conv)
}
