package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	// FindOpenForEvent returns the latest created event payment of the user, or domain.ErrPaymentNotFound.
	FindOpenForEvent(ctx context.Context, userID, eventID string) (*domain.Payment, error)
	// MarkPaid moves a created or expired payment to paid and reports whether this call made the transition.
	MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error)
	ExpireCreatedBefore(ctx context.Context, before time.Time) ([]*domain.Payment, error)
}

type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// CheckoutGateway is the hosted payment provider behind the browser checkout widget.
type CheckoutGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, req OrderRequest) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}
