package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/metrics"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	checkoutNameEvent = "EventZone Premium"
	checkoutNameVIP   = "EventZone VIP Pack"

	// metric status for a payment that settled but registered nothing
	statusDuplicate = "duplicate"
)

type registrationCommitter interface {
	Commit(ctx context.Context, eventID string, ident *domain.Identity) (*domain.Event, bool, error)
}

type PaymentConfig struct {
	Currency string
	TTL      time.Duration
}

// PaymentService opens checkouts with the hosted gateway and, once the gateway
// proves a payment, runs the fulfilment it was opened for.
type PaymentService struct {
	paymentRepo ports.PaymentRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	gateway     ports.CheckoutGateway
	committer   registrationCommitter
	cfg         PaymentConfig
	loc         *time.Location
	logger      logger.Logger
	now         func() time.Time
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	gateway ports.CheckoutGateway,
	committer registrationCommitter,
	cfg PaymentConfig,
	loc *time.Location,
	logger logger.Logger,
) *PaymentService {
	if loc == nil {
		loc = time.UTC
	}
	return &PaymentService{
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		committer:   committer,
		cfg:         cfg,
		loc:         loc,
		logger:      logger,
		now:         time.Now,
	}
}

// ChargeEvent opens a checkout for a premium event the caller is allowed to pay for.
// Nothing is registered until Confirm succeeds.
func (s *PaymentService) ChargeEvent(ctx context.Context, ident *domain.Identity, eventID string) (*domain.Checkout, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	decision := CanRegister(ident, event, s.now(), s.loc)
	switch decision.Verdict {
	case domain.VerdictBlocked:
		return nil, blockedError(decision.Reason)
	case domain.VerdictAllowedDirect:
		return nil, fmt.Errorf("%w: event does not require payment", domain.ErrValidation)
	}

	amount := domain.ToMinorUnits(decision.Amount)

	// повторный клик отдаёт тот же заказ, чтобы не оплатить событие дважды
	pending, err := s.paymentRepo.FindOpenForEvent(ctx, ident.UserID, event.ID)
	switch {
	case err == nil && pending.AmountMinor == amount && pending.Currency == s.cfg.Currency:
		s.logger.Debug("reusing open checkout",
			logger.String("order_id", pending.OrderID),
			logger.String("event_id", event.ID),
		)
		return s.checkout(pending, ident, checkoutNameEvent, event.Title), nil
	case err != nil && !errors.Is(err, domain.ErrPaymentNotFound):
		return nil, fmt.Errorf("find open payment: %w", err)
	}

	p := &domain.Payment{
		Purpose:     domain.PurposeEventRegistration,
		UserID:      ident.UserID,
		EventID:     event.ID,
		AmountMinor: amount,
	}
	if err = s.open(ctx, p); err != nil {
		return nil, err
	}

	return s.checkout(p, ident, checkoutNameEvent, event.Title), nil
}

func (s *PaymentService) ChargeVIP(ctx context.Context, ident *domain.Identity, months int) (*domain.Checkout, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}
	if ident.Role == domain.RoleCreator {
		return nil, fmt.Errorf("%w: creators cannot subscribe to VIP", domain.ErrForbidden)
	}

	price, ok := domain.VIPPlans[months]
	if !ok {
		return nil, fmt.Errorf("%w: no VIP plan for %d months", domain.ErrValidation, months)
	}

	p := &domain.Payment{
		Purpose:     domain.PurposeVIPSubscription,
		UserID:      ident.UserID,
		Months:      months,
		AmountMinor: domain.ToMinorUnits(price),
	}
	if err := s.open(ctx, p); err != nil {
		return nil, err
	}

	return s.checkout(p, ident, checkoutNameVIP, fmt.Sprintf("VIP Subscription (%d Months)", months)), nil
}

// Confirm handles the checkout widget's success callback. A confirmation that
// repeats an earlier one re-runs the idempotent fulfilment and changes nothing.
func (s *PaymentService) Confirm(ctx context.Context, ident *domain.Identity, proof domain.PaymentProof) (*domain.Payment, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}
	if !s.gateway.VerifySignature(proof.OrderID, proof.PaymentID, proof.Signature) {
		s.logger.Warn("payment signature rejected",
			logger.String("order_id", proof.OrderID),
			logger.String("user_id", ident.UserID),
		)
		return nil, domain.ErrPaymentVerification
	}

	p, err := s.paymentRepo.GetByOrderID(ctx, proof.OrderID)
	if err != nil {
		return nil, err
	}
	if p.UserID != ident.UserID {
		return nil, fmt.Errorf("%w: payment belongs to another user", domain.ErrForbidden)
	}

	changed, err := s.paymentRepo.MarkPaid(ctx, proof.OrderID, proof.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}
	if changed {
		metrics.Payment(string(p.Purpose), string(domain.PaymentStatusPaid))
		s.logger.Info("payment confirmed",
			logger.String("order_id", p.OrderID),
			logger.String("payment_id", proof.PaymentID),
			logger.String("purpose", string(p.Purpose)),
		)
	}
	p.Status = domain.PaymentStatusPaid
	p.PaymentID = proof.PaymentID

	if err = s.fulfil(ctx, ident, p, changed); err != nil {
		return nil, err
	}
	return p, nil
}

// ExpireStale marks checkouts that were never confirmed within the TTL.
func (s *PaymentService) ExpireStale(ctx context.Context) ([]*domain.Payment, error) {
	expired, err := s.paymentRepo.ExpireCreatedBefore(ctx, s.now().Add(-s.cfg.TTL))
	if err != nil {
		return nil, fmt.Errorf("expire payments: %w", err)
	}

	for _, p := range expired {
		metrics.Payment(string(p.Purpose), string(domain.PaymentStatusExpired))
	}
	if len(expired) > 0 {
		s.logger.Info("stale payments expired",
			logger.Int("count", len(expired)),
		)
	}

	return expired, nil
}

// fulfil runs the purchase behind p. justPaid is true when this confirmation
// settled the payment; a settled payment that registers nothing was paid twice.
func (s *PaymentService) fulfil(ctx context.Context, ident *domain.Identity, p *domain.Payment, justPaid bool) error {
	switch p.Purpose {
	case domain.PurposeEventRegistration:
		_, created, err := s.committer.Commit(ctx, p.EventID, ident)
		if err != nil {
			return fmt.Errorf("commit paid registration: %w", err)
		}
		if justPaid && !created {
			metrics.Payment(string(p.Purpose), statusDuplicate)
			s.logger.Warn("payment settled for an existing registration",
				logger.String("order_id", p.OrderID),
				logger.String("payment_id", p.PaymentID),
				logger.String("event_id", p.EventID),
				logger.String("user_id", p.UserID),
				logger.Int64("amount_minor", p.AmountMinor),
			)
		}
		return nil

	case domain.PurposeVIPSubscription:
		return s.activateVIP(ctx, p)

	default:
		return fmt.Errorf("%w: unknown payment purpose %q", domain.ErrValidation, p.Purpose)
	}
}

func (s *PaymentService) activateVIP(ctx context.Context, p *domain.Payment) error {
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	// a repeated confirmation must not extend the same purchase twice
	if user.Subscription != nil && user.Subscription.OrderID == p.OrderID {
		return nil
	}

	now := s.now().UTC()
	start := now
	if user.EffectiveRole(now) == domain.RoleVIP && user.Subscription != nil && user.Subscription.EndsAt.After(now) {
		start = user.Subscription.EndsAt
	}

	sub := domain.Subscription{
		OrderID:   p.OrderID,
		Months:    p.Months,
		StartedAt: start,
		EndsAt:    start.AddDate(0, p.Months, 0),
	}
	if err = s.userRepo.SetSubscription(ctx, p.UserID, domain.RoleVIP, sub); err != nil {
		return fmt.Errorf("set subscription: %w", err)
	}

	s.logger.Info("VIP subscription activated",
		logger.String("user_id", p.UserID),
		logger.Int("months", p.Months),
	)
	return nil
}

func (s *PaymentService) open(ctx context.Context, p *domain.Payment) error {
	p.Currency = s.cfg.Currency
	orderID, err := s.gateway.CreateOrder(ctx, ports.OrderRequest{
		AmountMinor: p.AmountMinor,
		Currency:    p.Currency,
		Receipt:     uuid.New().String(),
		Notes: map[string]string{
			"purpose":  string(p.Purpose),
			"user_id":  p.UserID,
			"event_id": p.EventID,
		},
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	now := s.now().UTC()
	p.OrderID = orderID
	p.Status = domain.PaymentStatusCreated
	p.CreatedAt = now
	p.UpdatedAt = now

	if err = s.paymentRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("store payment: %w", err)
	}
	metrics.Payment(string(p.Purpose), string(domain.PaymentStatusCreated))

	return nil
}

func (s *PaymentService) checkout(p *domain.Payment, ident *domain.Identity, name, description string) *domain.Checkout {
	return &domain.Checkout{
		KeyID:       s.gateway.KeyID(),
		OrderID:     p.OrderID,
		Amount:      p.AmountMinor,
		Currency:    p.Currency,
		Name:        name,
		Description: description,
		PrefillName: ident.DisplayName,
		PrefillMail: ident.Email,
	}
}
