package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_TicksReminders(t *testing.T) {
	reminders := mocks.NewMockReminderTicker(t)
	payments := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(reminders, payments, 20*time.Millisecond, time.Hour, log)

	reminders.EXPECT().Tick(mock.Anything, mock.AnythingOfType("time.Time")).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminders.Calls), 1)
	assert.Empty(t, payments.Calls)
}

func TestScheduler_ExpiresPayments(t *testing.T) {
	reminders := mocks.NewMockReminderTicker(t)
	payments := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(reminders, payments, time.Hour, 20*time.Millisecond, log)

	expired := []*domain.Payment{
		{OrderID: "order_1", UserID: "u1", Purpose: domain.PurposeVIPSubscription},
	}
	payments.EXPECT().ExpireStale(mock.Anything).Return(expired, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(payments.Calls), 1)
	assert.Empty(t, reminders.Calls)
}

func TestScheduler_ErrorsDoNotStopLoop(t *testing.T) {
	reminders := mocks.NewMockReminderTicker(t)
	payments := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(reminders, payments, 15*time.Millisecond, 15*time.Millisecond, log)

	reminders.EXPECT().Tick(mock.Anything, mock.Anything).Return(0, errors.New("db error"))
	payments.EXPECT().ExpireStale(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminders.Calls), 2)
	assert.GreaterOrEqual(t, len(payments.Calls), 2)
}

func TestScheduler_PassesClock(t *testing.T) {
	reminders := mocks.NewMockReminderTicker(t)
	payments := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	fixed := time.Date(2025, 6, 10, 18, 30, 0, 0, time.UTC)
	s := New(reminders, payments, 20*time.Millisecond, time.Hour, log)
	s.now = func() time.Time { return fixed }

	reminders.EXPECT().Tick(mock.Anything, fixed).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reminders := mocks.NewMockReminderTicker(t)
	payments := mocks.NewMockPaymentExpirer(t)
	log := newTestLogger(t)

	s := New(reminders, payments, time.Second, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
