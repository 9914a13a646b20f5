package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startingAt(id, clock string, users ...string) *domain.Event {
	e := &domain.Event{ID: id, Title: id, Date: "2025-06-10", Time: clock}
	for _, u := range users {
		e.RegisteredUsers = append(e.RegisteredUsers, domain.Registration{UserID: u})
	}
	return e
}

func TestDue_WindowIsInclusive(t *testing.T) {
	events := []*domain.Event{startingAt("e1", "12:01", "u1", "u2")}

	tests := []struct {
		name string
		now  time.Time
		due  int
	}{
		{"61s before", testNow.Add(-time.Second), 0},
		{"60s before", testNow, 2},
		{"at start", testNow.Add(time.Minute), 2},
		{"60s after", testNow.Add(2 * time.Minute), 2},
		{"61s after", testNow.Add(2*time.Minute + time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Due(events, tt.now, DefaultReminderWindow, time.UTC), tt.due)
		})
	}
}

func TestDue_SkipsUnparseable(t *testing.T) {
	events := []*domain.Event{{ID: "e1", Date: "", Time: "", RegisteredUsers: []domain.Registration{{UserID: "u1"}}}}

	assert.Empty(t, Due(events, testNow, DefaultReminderWindow, time.UTC))
}

func TestDueReminder_Key(t *testing.T) {
	d := DueReminder{Event: &domain.Event{ID: "e1"}, Registration: domain.Registration{UserID: "u1"}}

	assert.Equal(t, "reminder:e1:u1", d.Key())
}

type reminderMocks struct {
	events   *mocks.MockEventRepo
	users    *mocks.MockUserRepo
	seen     *mocks.MockSeenSet
	notifier *mocks.MockNotifier
}

func newReminderService(t *testing.T) (*ReminderService, reminderMocks) {
	m := reminderMocks{
		events:   mocks.NewMockEventRepo(t),
		users:    mocks.NewMockUserRepo(t),
		seen:     mocks.NewMockSeenSet(t),
		notifier: mocks.NewMockNotifier(t),
	}
	return NewReminderService(m.events, m.users, m.seen, m.notifier, 0, time.UTC, newTestLogger(t)), m
}

func TestReminderService_Tick_FiresOncePerRegistration(t *testing.T) {
	svc, m := newReminderService(t)

	event := startingAt("e1", "12:00", "u1")
	user := &domain.User{ID: "u1"}
	m.events.EXPECT().List(mock.Anything).Return([]*domain.Event{event, startingAt("later", "18:00", "u1")}, nil)
	m.seen.EXPECT().MarkIfNew(mock.Anything, "reminder:e1:u1").Return(true, nil).Once()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil).Once()
	m.notifier.EXPECT().NotifyReminder(mock.Anything, user, event).Return().Once()

	fired, err := svc.Tick(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	m.seen.EXPECT().MarkIfNew(mock.Anything, "reminder:e1:u1").Return(false, nil).Once()

	fired, err = svc.Tick(context.Background(), testNow.Add(10*time.Second))
	require.NoError(t, err)
	assert.Zero(t, fired)
}

func TestReminderService_Tick_FetchFailed(t *testing.T) {
	svc, m := newReminderService(t)

	m.events.EXPECT().List(mock.Anything).Return(nil, errors.New("timeout"))

	_, err := svc.Tick(context.Background(), testNow)

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestReminderService_Tick_SeenSetErrorSkips(t *testing.T) {
	svc, m := newReminderService(t)

	m.events.EXPECT().List(mock.Anything).Return([]*domain.Event{startingAt("e1", "12:00", "u1")}, nil)
	m.seen.EXPECT().MarkIfNew(mock.Anything, "reminder:e1:u1").Return(false, errors.New("redis down"))

	fired, err := svc.Tick(context.Background(), testNow)

	require.NoError(t, err)
	assert.Zero(t, fired)
}
