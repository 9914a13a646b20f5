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
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock() time.Time { return testNow }

func creator() *domain.Identity {
	return &domain.Identity{UserID: "c1", Email: "host@example.com", DisplayName: "host", Role: domain.RoleCreator, SessionID: "s-c1"}
}

func attendee(role domain.Role) *domain.Identity {
	return &domain.Identity{UserID: "u1", Email: "Alice@Example.com", DisplayName: "alice", Role: role, SessionID: "s-u1"}
}

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, time.UTC, newTestLogger(t))
	svc.now = fixedClock
	return svc, repo
}

func TestEventService_FetchAndClassify_Partitions(t *testing.T) {
	svc, repo := newEventService(t)

	events := []*domain.Event{
		{ID: "past", Date: "2025-06-09", Time: "10:00", Category: domain.CategoryPremium},
		{ID: "prem", Date: "2025-06-11", Time: "10:00", Category: domain.CategoryPremium},
		{ID: "norm", Date: "2025-06-10", Time: "12:00", Category: domain.CategoryNormal},
		{ID: "broken", Date: "tomorrow", Time: "10:00", Category: domain.CategoryNormal},
	}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	c, err := svc.FetchAndClassify(context.Background(), testNow)

	require.NoError(t, err)
	assert.Equal(t, len(events), c.Len())
	require.Len(t, c.Premium, 1)
	assert.Equal(t, "prem", c.Premium[0].ID)
	require.Len(t, c.Normal, 1)
	assert.Equal(t, "norm", c.Normal[0].ID)
	assert.Len(t, c.Expired, 2)
}

func TestEventService_FetchAndClassify_Empty(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Event{}, nil)

	c, err := svc.FetchAndClassify(context.Background(), testNow)

	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.NotNil(t, c.Premium)
}

func TestEventService_FetchAndClassify_FetchFailed(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.FetchAndClassify(context.Background(), testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestEventService_Create_Success(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), creator(), domain.CreateEventInput{
		Title:    "Go Meetup",
		Date:     "2025-07-01",
		Time:     "18:30",
		Category: "Premium",
		Price:    decimal.NewFromInt(250),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.CategoryPremium, event.Category)
	assert.True(t, event.Price.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "c1", event.CreatedBy)
	assert.Equal(t, "host@example.com", event.CreatorEmail)
	assert.Empty(t, event.RegisteredUsers)
}

func TestEventService_Create_NormalPriceIgnored(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), creator(), domain.CreateEventInput{
		Title: "Open Day",
		Date:  "2025-07-01",
		Time:  "09:00",
		Price: decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryNormal, event.Category)
	assert.True(t, event.Price.IsZero())
}

func TestEventService_Create_NotCreator(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Create(context.Background(), attendee(domain.RoleUser), domain.CreateEventInput{
		Title: "X", Date: "2025-07-01", Time: "09:00",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"empty title", domain.CreateEventInput{Date: "2025-07-01", Time: "09:00"}},
		{"bad date", domain.CreateEventInput{Title: "X", Date: "01/07/2025", Time: "09:00"}},
		{"bad time", domain.CreateEventInput{Title: "X", Date: "2025-07-01", Time: "9am"}},
		{"unknown category", domain.CreateEventInput{Title: "X", Date: "2025-07-01", Time: "09:00", Category: "gold"}},
		{"negative price", domain.CreateEventInput{Title: "X", Date: "2025-07-01", Time: "09:00", Category: "premium", Price: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEventService(t)

			_, err := svc.Create(context.Background(), creator(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Update_NotOwner(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", CreatedBy: "someone-else"}, nil)

	title := "Renamed"
	_, err := svc.Update(context.Background(), creator(), "e1", domain.UpdateEventInput{Title: &title})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Update_Success(t *testing.T) {
	svc, repo := newEventService(t)

	stored := &domain.Event{ID: "e1", Title: "Old", Date: "2025-07-01", Time: "09:00", Category: domain.CategoryNormal, CreatedBy: "c1"}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Title == "New" && e.Time == "10:15"
	})).Return(nil)

	title, clock := "New", "10:15"
	event, err := svc.Update(context.Background(), creator(), "e1", domain.UpdateEventInput{Title: &title, Time: &clock})

	require.NoError(t, err)
	assert.Equal(t, testNow, event.UpdatedAt)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), creator(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_Success(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", CreatedBy: "c1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), creator(), "e1"))
}

func TestEventService_ListByCreator_SortedByClock(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().ListByCreator(mock.Anything, "c1").Return([]*domain.Event{
		{ID: "n1", Time: "09:00", Category: domain.CategoryNormal},
		{ID: "p1", Time: "08:00", Category: domain.CategoryPremium},
		{ID: "n2", Time: "21:30", Category: domain.CategoryNormal},
		{ID: "p2", Time: "19:00", Category: domain.CategoryPremium},
	}, nil)

	res, err := svc.ListByCreator(context.Background(), creator())

	require.NoError(t, err)
	require.Len(t, res.Normal, 2)
	require.Len(t, res.Premium, 2)
	assert.Equal(t, "n2", res.Normal[0].ID)
	assert.Equal(t, "p2", res.Premium[0].ID)
}

func TestEventService_Stats(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().ListByCreator(mock.Anything, "c1").Return([]*domain.Event{
		{
			ID: "p1", Time: "19:00", Category: domain.CategoryPremium,
			RegisteredUsers: []domain.Registration{{UserID: "u1"}, {UserID: "u2"}},
			Enquiries:       []domain.Enquiry{{ID: "q1"}},
		},
		{
			ID: "n1", Time: "09:00", Category: domain.CategoryNormal,
			RegisteredUsers: []domain.Registration{{UserID: "u3"}},
			Feedbacks:       []domain.Feedback{{UserID: "u3"}, {UserID: "u1"}},
			Enquiries:       []domain.Enquiry{{ID: "q2"}, {ID: "q3"}},
		},
	}, nil)

	stats, err := svc.Stats(context.Background(), creator())

	require.NoError(t, err)
	assert.Equal(t, domain.CreatorStats{Events: 2, Registrations: 3, Feedbacks: 2, Enquiries: 3}, stats)
}

func TestEventService_Stats_NoEvents(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().ListByCreator(mock.Anything, "c1").Return([]*domain.Event{}, nil)

	stats, err := svc.Stats(context.Background(), creator())

	require.NoError(t, err)
	assert.Zero(t, stats)
}

func TestEventService_Stats_RepoError(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().ListByCreator(mock.Anything, "c1").Return(nil, errors.New("db down"))

	_, err := svc.Stats(context.Background(), creator())

	assert.Error(t, err)
}

func TestEventService_Stats_Anonymous(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Stats(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEventService_RegisteredFor(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "e1", RegisteredUsers: []domain.Registration{{UserID: "u1"}}},
		{ID: "e2", RegisteredUsers: []domain.Registration{{UserID: "u2"}}},
	}, nil)

	events, err := svc.RegisteredFor(context.Background(), attendee(domain.RoleUser))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
}

func TestEventService_Registrations_NotOwner(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", CreatedBy: "c2"}, nil)

	_, err := svc.Registrations(context.Background(), creator(), "e1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
