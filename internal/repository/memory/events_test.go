package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type nopNotifier struct{}

func (nopNotifier) NotifyRegistered(context.Context, *domain.User, *domain.Event)                     {}
func (nopNotifier) NotifyReminder(context.Context, *domain.User, *domain.Event)                       {}
func (nopNotifier) NotifyEnquiryReplied(context.Context, *domain.User, *domain.Event, domain.Enquiry) {}

type staticUsers struct{}

func (staticUsers) Create(context.Context, *domain.User) error { return nil }
func (staticUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}
func (staticUsers) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (staticUsers) SetSubscription(context.Context, string, domain.Role, domain.Subscription) error {
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func seed(t *testing.T, s *EventStore) *domain.Event {
	t.Helper()
	e := &domain.Event{ID: "e1", Title: "Meetup", Date: "2099-01-01", Time: "18:00", Category: domain.CategoryNormal}
	require.NoError(t, s.Create(context.Background(), e))
	return e
}

func TestEventStore_ConcurrentCommitsLeaveOneRegistration(t *testing.T) {
	store := NewEventStore()
	seed(t, store)
	svc := service.NewRegistrationService(store, store, staticUsers{}, nopNotifier{}, time.UTC, newTestLogger(t))
	ident := &domain.Identity{UserID: "u1", Email: "alice@example.com", Role: domain.RoleUser}

	const clients = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := svc.Commit(context.Background(), "e1", ident)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	e, err := store.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, e.RegisteredUsers, 1)
	assert.Equal(t, 1, created)
}

func TestEventStore_DistinctUsersAllRegistered(t *testing.T) {
	store := NewEventStore()
	seed(t, store)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.AddRegistration(context.Background(), "e1", domain.Registration{UserID: fmt.Sprintf("u%d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	e, err := store.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, e.RegisteredUsers, 10)
}

func TestEventStore_ReplyIsVersioned(t *testing.T) {
	store := NewEventStore()
	seed(t, store)
	ctx := context.Background()

	require.NoError(t, store.AddEnquiry(ctx, "e1", domain.Enquiry{ID: "q1", Email: "a@b.c", Version: 1}))

	require.NoError(t, store.ReplyEnquiry(ctx, "e1", "q1", "first", 1))
	assert.ErrorIs(t, store.ReplyEnquiry(ctx, "e1", "q1", "second", 1), domain.ErrConflict)
	assert.ErrorIs(t, store.ReplyEnquiry(ctx, "e1", "missing", "x", 1), domain.ErrEnquiryNotFound)

	e, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "first", e.Enquiries[0].Reply)
	assert.Equal(t, 2, e.Enquiries[0].Version)
}

func TestEventStore_ReplyDoesNotDropConcurrentEnquiry(t *testing.T) {
	store := NewEventStore()
	seed(t, store)
	ctx := context.Background()

	require.NoError(t, store.AddEnquiry(ctx, "e1", domain.Enquiry{ID: "q1", Version: 1}))
	snapshot, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)

	// a second enquiry lands after the creator loaded the thread
	require.NoError(t, store.AddEnquiry(ctx, "e1", domain.Enquiry{ID: "q2", Version: 1}))
	require.NoError(t, store.ReplyEnquiry(ctx, "e1", snapshot.Enquiries[0].ID, "answer", snapshot.Enquiries[0].Version))

	e, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, e.Enquiries, 2)
}

func TestEventStore_UpdateKeepsNestedLists(t *testing.T) {
	store := NewEventStore()
	e := seed(t, store)
	ctx := context.Background()

	_, err := store.AddRegistration(ctx, "e1", domain.Registration{UserID: "u1"})
	require.NoError(t, err)

	e.Title = "Renamed"
	require.NoError(t, store.Update(ctx, e))

	got, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Len(t, got.RegisteredUsers, 1)
}

func TestEventStore_ReadsAreCopies(t *testing.T) {
	store := NewEventStore()
	seed(t, store)

	got, err := store.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	got.RegisteredUsers = append(got.RegisteredUsers, domain.Registration{UserID: "intruder"})

	again, err := store.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Empty(t, again.RegisteredUsers)
}

func TestEventStore_DeleteEnquiryAndEvent(t *testing.T) {
	store := NewEventStore()
	seed(t, store)
	ctx := context.Background()

	require.NoError(t, store.AddEnquiry(ctx, "e1", domain.Enquiry{ID: "q1"}))
	require.NoError(t, store.DeleteEnquiry(ctx, "e1", "q1"))
	assert.ErrorIs(t, store.DeleteEnquiry(ctx, "e1", "q1"), domain.ErrEnquiryNotFound)

	require.NoError(t, store.Delete(ctx, "e1"))
	_, err := store.GetByID(ctx, "e1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
