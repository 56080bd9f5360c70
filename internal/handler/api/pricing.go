package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "riide-backend/internal/handler/dto/request"
	resdto "riide-backend/internal/handler/dto/response"
	"riide-backend/internal/handler/httperr"
	"riide-backend/internal/usecase/queries"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
	}
}

// @Summary Calculate price
// @Description Build a non-binding price quote with the full discount breakdown
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/calculate [post]
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.pricingQueries.BuildQuote(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No rate available for the requested vehicle type")
		case errors.Is(err, queries.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Duration must be positive")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Validate promo code
// @Description Check a promo code against a booking amount
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Validation request"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promo/validate [post]
func (h *PricingHandler) ValidatePromo(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.pricingQueries.ValidatePromo(c.Request.Context(), req.Code, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPromoNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promo code not found")
		case errors.Is(err, queries.ErrPromoInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Promo code is not eligible")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoQuoteView(view))
}
