package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/metrics"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	eventRepo ports.EventRepo
	regRepo   ports.RegistrationRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	loc       *time.Location
	logger    logger.Logger
	now       func() time.Time
}

func NewRegistrationService(
	eventRepo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	loc *time.Location,
	logger logger.Logger,
) *RegistrationService {
	if loc == nil {
		loc = time.UTC
	}
	return &RegistrationService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *RegistrationService) Eligibility(ctx context.Context, ident *domain.Identity, eventID string) (domain.Decision, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return domain.Decision{}, err
	}
	return CanRegister(ident, event, s.now(), s.loc), nil
}

// Register commits a registration for events that need no payment.
// Premium events return domain.ErrPaymentRequired; the caller goes through checkout instead.
func (s *RegistrationService) Register(ctx context.Context, ident *domain.Identity, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	decision := CanRegister(ident, event, s.now(), s.loc)
	switch decision.Verdict {
	case domain.VerdictBlocked:
		return nil, blockedError(decision.Reason)
	case domain.VerdictAllowedViaPayment:
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentRequired, decision.Amount.StringFixed(2))
	}

	updated, _, err := s.Commit(ctx, eventID, ident)
	return updated, err
}

// Commit appends the caller to the event's registrations. It is idempotent per
// (event, user): a repeated or concurrent commit leaves a single entry and reports created=false.
func (s *RegistrationService) Commit(ctx context.Context, eventID string, ident *domain.Identity) (*domain.Event, bool, error) {
	if ident == nil {
		return nil, false, domain.ErrUnauthorized
	}

	reg := domain.Registration{
		UserID:       ident.UserID,
		Email:        ident.Email,
		RegisteredAt: domain.Timestamp(s.now()),
	}

	created, err := s.regRepo.AddRegistration(ctx, eventID, reg)
	if err != nil {
		return nil, false, fmt.Errorf("add registration: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, created, fmt.Errorf("reload event: %w", err)
	}
	metrics.RegistrationCommitted(string(event.Category), created)

	if !created {
		s.logger.Warn("duplicate registration ignored",
			logger.String("event_id", eventID),
			logger.String("user_id", ident.UserID),
		)
		return event, false, nil
	}

	s.logger.Info("registration committed",
		logger.String("event_id", eventID),
		logger.String("user_id", ident.UserID),
	)

	user, err := s.userRepo.GetByID(ctx, ident.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", ident.UserID),
			logger.String("error", err.Error()),
		)
		return event, true, nil
	}

	go s.notifier.NotifyRegistered(context.WithoutCancel(ctx), user, event)

	return event, true, nil
}

func blockedError(reason string) error {
	if reason == domain.ReasonAlreadyRegistered {
		return domain.ErrAlreadyRegistered
	}
	if reason == domain.ReasonSignIn {
		return domain.ErrUnauthorized
	}
	return fmt.Errorf("%w: %s", domain.ErrRegistrationBlocked, reason)
}
