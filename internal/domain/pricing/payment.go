package pricing

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentICP  PaymentMethod = "icp"
	PaymentUSDT PaymentMethod = "usdt"
	PaymentBTC  PaymentMethod = "btc"
	PaymentETH  PaymentMethod = "eth"
	PaymentCard PaymentMethod = "card"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentICP, PaymentUSDT, PaymentBTC, PaymentETH, PaymentCard:
		return true
	default:
		return false
	}
}

// Fixed payment-method discount rates. Crypto payments are discounted to
// steer users away from card fees; the table is deliberately not configurable.
var paymentDiscountRates = map[PaymentMethod]decimal.Decimal{
	PaymentICP:  decimal.New(15, -2),
	PaymentUSDT: decimal.New(10, -2),
	PaymentBTC:  decimal.New(10, -2),
	PaymentETH:  decimal.New(10, -2),
	PaymentCard: decimal.Zero,
}

// DiscountRate returns the method's rate, or zero for unrecognized methods.
func (m PaymentMethod) DiscountRate() decimal.Decimal {
	if rate, ok := paymentDiscountRates[m]; ok {
		return rate
	}
	return decimal.Zero
}
