package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderTicker interface {
	Tick(ctx context.Context, now time.Time) (int, error)
}

type paymentExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Payment, error)
}

// Scheduler drives the periodic jobs: reminder polling and expiry of abandoned checkouts.
type Scheduler struct {
	reminders        reminderTicker
	payments         paymentExpirer
	reminderInterval time.Duration
	paymentInterval  time.Duration
	logger           logger.Logger
	now              func() time.Time
}

func New(
	reminders reminderTicker,
	payments paymentExpirer,
	reminderInterval time.Duration,
	paymentInterval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reminders:        reminders,
		payments:         payments,
		reminderInterval: reminderInterval,
		paymentInterval:  paymentInterval,
		logger:           logger,
		now:              time.Now,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	reminderTicker := time.NewTicker(s.reminderInterval)
	defer reminderTicker.Stop()

	paymentTicker := time.NewTicker(s.paymentInterval)
	defer paymentTicker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("reminder_interval", s.reminderInterval),
		logger.Duration("payment_interval", s.paymentInterval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-reminderTicker.C:
			s.tickReminders(ctx)
		case <-paymentTicker.C:
			s.expirePayments(ctx)
		}
	}
}

func (s *Scheduler) tickReminders(ctx context.Context) {
	fired, err := s.reminders.Tick(ctx, s.now())
	if err != nil {
		// событие пропущено, следующий тик повторит попытку
		s.logger.Error("reminder tick failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if fired > 0 {
		s.logger.Debug("reminders fired",
			logger.Int("count", fired),
		)
	}
}

func (s *Scheduler) expirePayments(ctx context.Context) {
	expired, err := s.payments.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale payments",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, p := range expired {
		s.logger.Info("payment expired",
			logger.String("order_id", p.OrderID),
			logger.String("user_id", p.UserID),
			logger.String("purpose", string(p.Purpose)),
		)
	}
}
