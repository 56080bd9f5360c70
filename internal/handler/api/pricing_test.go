//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"riide-backend/internal/handler/api"
	resdto "riide-backend/internal/handler/dto/response"
	"riide-backend/internal/usecase/queries"
	"riide-backend/tests/common/builder"
	"riide-backend/tests/common/httptest"
	queriesmock "riide-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQueries)

	s.router.POST("/pricing/calculate", s.handler.CalculatePrice)
	s.router.POST("/promo/validate", s.handler.ValidatePromo)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func quoteView() *queries.QuoteView {
	code := "RIIDE20"
	return &queries.QuoteView{
		BasePrice:       decimal.NewFromInt(90),
		ExtrasPrice:     decimal.NewFromInt(5),
		Subtotal:        decimal.NewFromInt(95),
		PaymentDiscount: decimal.RequireFromString("14.25"),
		PromoDiscount:   decimal.RequireFromString("19"),
		TotalDiscount:   decimal.RequireFromString("33.25"),
		TotalPrice:      decimal.RequireFromString("61.75"),
		PromoApplied:    true,
		PromoCode:       &code,
	}
}

func (s *PricingHandlerTestSuite) TestCalculatePrice() {
	url := "/pricing/calculate"
	reqBody := builder.NewQuoteBuilder().BuildDTO()

	s.Run("success: returns 200 OK with fixed-decimal prices", func() {
		s.mockQueries.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
			Return(quoteView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("95.00", response.Subtotal)
		s.Equal("33.25", response.TotalDiscount)
		s.Equal("61.75", response.TotalPrice)
		s.True(response.PromoApplied)
	})

	s.Run("error: 404 Not Found for unknown vehicle type", func() {
		s.mockQueries.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrRateNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No rate available")
	})

	s.Run("error: 400 Bad Request for non-positive duration", func() {
		s.mockQueries.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidDuration).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Duration must be positive")
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"service_type": "teleport"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrPricingFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *PricingHandlerTestSuite) TestValidatePromo() {
	url := "/promo/validate"
	reqBody := map[string]any{"code": "RIIDE20", "booking_amount": "95"}

	s.Run("success: returns 200 OK with discount breakdown", func() {
		s.mockQueries.EXPECT().ValidatePromo(gomock.Any(), "RIIDE20", gomock.Any()).
			Return(&queries.PromoQuoteView{
				Code:               "RIIDE20",
				Description:        "20% off your ride",
				DiscountPercentage: decimal.New(20, -2),
				DiscountAmount:     decimal.NewFromInt(19),
				FinalAmount:        decimal.NewFromInt(76),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.PromoValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("RIIDE20", response.Code)
		s.Equal("19.00", response.DiscountAmount)
		s.Equal("76.00", response.FinalAmount)
	})

	s.Run("error: 404 Not Found for unknown code", func() {
		s.mockQueries.EXPECT().ValidatePromo(gomock.Any(), "RIIDE20", gomock.Any()).
			Return(nil, queries.ErrPromoNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Promo code not found")
	})

	s.Run("error: 400 Bad Request for ineligible code", func() {
		s.mockQueries.EXPECT().ValidatePromo(gomock.Any(), "RIIDE20", gomock.Any()).
			Return(nil, queries.ErrPromoInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not eligible")
	})

	s.Run("error: 400 Bad Request when code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"booking_amount": "95"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
