package response

import (
	"riide-backend/internal/usecase/queries"
)

// Prices are serialized as fixed two-decimal strings so clients never see
// float artifacts.
type QuoteResponse struct {
	BasePrice       string          `json:"basePrice"`
	ExtrasPrice     string          `json:"extrasPrice"`
	Subtotal        string          `json:"subtotal"`
	PaymentDiscount string          `json:"paymentDiscount"`
	PromoDiscount   string          `json:"promoDiscount"`
	TotalDiscount   string          `json:"totalDiscount"`
	TotalPrice      string          `json:"totalPrice"`
	PromoApplied    bool            `json:"promoApplied"`
	PromoCode       *string         `json:"promoCode,omitempty"`
	Breakdown       []BreakdownItem `json:"breakdown"`
}

type BreakdownItem struct {
	Key    string `json:"key"`
	Amount string `json:"amount"`
}

type PromoValidationResponse struct {
	Code               string `json:"code"`
	Description        string `json:"description"`
	DiscountPercentage string `json:"discountPercentage"`
	DiscountAmount     string `json:"discountAmount"`
	FinalAmount        string `json:"finalAmount"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	breakdown := make([]BreakdownItem, len(v.Breakdown))
	for i, item := range v.Breakdown {
		breakdown[i] = BreakdownItem{
			Key:    item.Key,
			Amount: item.Amount.StringFixed(2),
		}
	}

	return &QuoteResponse{
		BasePrice:       v.BasePrice.StringFixed(2),
		ExtrasPrice:     v.ExtrasPrice.StringFixed(2),
		Subtotal:        v.Subtotal.StringFixed(2),
		PaymentDiscount: v.PaymentDiscount.StringFixed(2),
		PromoDiscount:   v.PromoDiscount.StringFixed(2),
		TotalDiscount:   v.TotalDiscount.StringFixed(2),
		TotalPrice:      v.TotalPrice.StringFixed(2),
		PromoApplied:    v.PromoApplied,
		PromoCode:       v.PromoCode,
		Breakdown:       breakdown,
	}
}

func FromPromoQuoteView(v *queries.PromoQuoteView) *PromoValidationResponse {
	return &PromoValidationResponse{
		Code:               v.Code,
		Description:        v.Description,
		DiscountPercentage: v.DiscountPercentage.String(),
		DiscountAmount:     v.DiscountAmount.StringFixed(2),
		FinalAmount:        v.FinalAmount.StringFixed(2),
	}
}
