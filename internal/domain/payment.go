package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentPurpose string

const (
	PurposeEventRegistration PaymentPurpose = "event_registration"
	PurposeVIPSubscription   PaymentPurpose = "vip_subscription"
)

type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusExpired PaymentStatus = "expired"
)

// VIPPlans maps a subscription length in months to its price.
var VIPPlans = map[int]decimal.Decimal{
	1: decimal.NewFromInt(199),
	3: decimal.NewFromInt(499),
	6: decimal.NewFromInt(899),
}

type Payment struct {
	OrderID     string         `json:"order_id"`
	Purpose     PaymentPurpose `json:"purpose"`
	UserID      string         `json:"user_id"`
	EventID     string         `json:"event_id,omitempty"`
	Months      int            `json:"months,omitempty"`
	AmountMinor int64          `json:"amount"`
	Currency    string         `json:"currency"`
	Status      PaymentStatus  `json:"status"`
	PaymentID   string         `json:"payment_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ToMinorUnits converts an amount in major currency units to the smallest unit.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// Checkout carries what the browser checkout widget needs to open.
type Checkout struct {
	KeyID       string `json:"key"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PrefillName string `json:"prefill_name"`
	PrefillMail string `json:"prefill_email"`
}

// PaymentProof is what the checkout widget hands back on success.
type PaymentProof struct {
	OrderID   string
	PaymentID string
	Signature string
}
