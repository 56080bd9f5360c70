package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep command code off the read-side view types.
type PromoSnapshot struct {
	ID                 uuid.UUID
	Code               string
	DiscountPercentage decimal.Decimal
	Description        string
	ValidFrom          time.Time
	ValidTo            time.Time
	UsageLimit         int
	UsedCount          int
	Active             bool
}

type UserSnapshot struct {
	ID            uuid.UUID
	Email         string
	Name          string
	Phone         *string
	PasswordHash  string
	WalletAddress *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
