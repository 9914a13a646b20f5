package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationMocks struct {
	events   *mocks.MockEventRepo
	regs     *mocks.MockRegistrationRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockNotifier
}

func newRegistrationService(t *testing.T) (*RegistrationService, registrationMocks) {
	m := registrationMocks{
		events:   mocks.NewMockEventRepo(t),
		regs:     mocks.NewMockRegistrationRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
	svc := NewRegistrationService(m.events, m.regs, m.users, m.notifier, time.UTC, newTestLogger(t))
	svc.now = fixedClock
	return svc, m
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestRegistrationService_Register_Direct(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := &domain.Event{ID: "e1", Title: "Meetup", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryNormal}
	after := *event
	after.RegisteredUsers = []domain.Registration{{UserID: "u1", Email: "Alice@Example.com", RegisteredAt: testNow}}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Once()
	m.regs.EXPECT().AddRegistration(mock.Anything, "e1", domain.Registration{
		UserID: "u1", Email: "Alice@Example.com", RegisteredAt: testNow,
	}).Return(true, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&after, nil).Once()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	done := make(chan struct{})
	m.notifier.EXPECT().NotifyRegistered(mock.Anything, user, &after).Run(func(context.Context, *domain.User, *domain.Event) {
		close(done)
	}).Return()

	updated, err := svc.Register(context.Background(), attendee(domain.RoleUser), "e1")

	require.NoError(t, err)
	assert.True(t, updated.IsRegistered("u1"))
	waitNotified(t, done)
}

func TestRegistrationService_Register_PremiumNeedsPayment(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryPremium, Price: decimal.NewFromInt(499),
	}, nil)

	_, err := svc.Register(context.Background(), attendee(domain.RoleVIP), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentRequired)
	assert.Contains(t, err.Error(), "499.00")
}

func TestRegistrationService_Register_Blocked(t *testing.T) {
	tests := []struct {
		name  string
		ident *domain.Identity
		event *domain.Event
		want  error
	}{
		{"anonymous", nil, &domain.Event{ID: "e1", Date: "2025-06-11", Time: "18:00"}, domain.ErrUnauthorized},
		{"expired", attendee(domain.RoleUser), &domain.Event{ID: "e1", Date: "2025-06-01", Time: "18:00"}, domain.ErrRegistrationBlocked},
		{"vip required", attendee(domain.RoleUser), &domain.Event{ID: "e1", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryPremium}, domain.ErrRegistrationBlocked},
		{"already registered", attendee(domain.RoleUser), &domain.Event{
			ID: "e1", Date: "2025-06-11", Time: "18:00", RegisteredUsers: []domain.Registration{{UserID: "u1"}},
		}, domain.ErrAlreadyRegistered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRegistrationService(t)
			m.events.EXPECT().GetByID(mock.Anything, "e1").Return(tt.event, nil)

			_, err := svc.Register(context.Background(), tt.ident, "e1")

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegistrationService_Commit_DuplicateIsNoop(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := &domain.Event{ID: "e1", Category: domain.CategoryNormal, RegisteredUsers: []domain.Registration{{UserID: "u1"}}}
	m.regs.EXPECT().AddRegistration(mock.Anything, "e1", mock.Anything).Return(false, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	updated, created, err := svc.Commit(context.Background(), "e1", attendee(domain.RoleUser))

	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, updated.RegisteredUsers, 1)
}

func TestRegistrationService_Commit_StoreError(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.regs.EXPECT().AddRegistration(mock.Anything, "e1", mock.Anything).Return(false, errors.New("db down"))

	_, _, err := svc.Commit(context.Background(), "e1", attendee(domain.RoleUser))

	require.Error(t, err)
}

func TestRegistrationService_Commit_UserLookupFailsStillCommits(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.regs.EXPECT().AddRegistration(mock.Anything, "e1", mock.Anything).Return(true, nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, created, err := svc.Commit(context.Background(), "e1", attendee(domain.RoleUser))

	require.NoError(t, err)
	assert.True(t, created)
}

func TestRegistrationService_Eligibility(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID: "e1", Date: "2025-06-11", Time: "18:00", Category: domain.CategoryPremium,
	}, nil)

	d, err := svc.Eligibility(context.Background(), attendee(domain.RoleVIP), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.VerdictAllowedViaPayment, d.Verdict)
	assert.True(t, d.Amount.Equal(domain.DefaultPremiumPrice))
}
