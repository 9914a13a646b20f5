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

// DefaultReminderWindow is how close to the start a poll has to land to fire a reminder.
const DefaultReminderWindow = 60 * time.Second

type ReminderService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	seen      ports.SeenSet
	notifier  ports.Notifier
	window    time.Duration
	loc       *time.Location
	logger    logger.Logger
}

func NewReminderService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	seen ports.SeenSet,
	notifier ports.Notifier,
	window time.Duration,
	loc *time.Location,
	logger logger.Logger,
) *ReminderService {
	if window <= 0 {
		window = DefaultReminderWindow
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		seen:      seen,
		notifier:  notifier,
		window:    window,
		loc:       loc,
		logger:    logger,
	}
}

// DueReminder is a registration whose event starts within the window.
type DueReminder struct {
	Event        *domain.Event
	Registration domain.Registration
}

func (d DueReminder) Key() string {
	return fmt.Sprintf("reminder:%s:%s", d.Event.ID, d.Registration.UserID)
}

// Due lists every registration whose event start is within window of now, inclusive.
func Due(events []*domain.Event, now time.Time, window time.Duration, loc *time.Location) []DueReminder {
	var res []DueReminder
	for _, e := range events {
		at, err := e.ScheduledAt(loc)
		if err != nil {
			continue
		}
		diff := at.Sub(now)
		if diff < 0 {
			diff = -diff
		}
		if diff > window {
			continue
		}
		for _, r := range e.RegisteredUsers {
			res = append(res, DueReminder{Event: e, Registration: r})
		}
	}
	return res
}

// Tick fires each due reminder whose key is new to the seen-set and returns how many fired.
func (s *ReminderService) Tick(ctx context.Context, now time.Time) (int, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		metrics.FetchFailed()
		return 0, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	fired := 0
	for _, d := range Due(events, now, s.window, s.loc) {
		fresh, err := s.seen.MarkIfNew(ctx, d.Key())
		if err != nil {
			s.logger.Error("failed to mark reminder",
				logger.String("key", d.Key()),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !fresh {
			continue
		}

		user, err := s.userRepo.GetByID(ctx, d.Registration.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", d.Registration.UserID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyReminder(ctx, user, d.Event)
		metrics.ReminderFired()
		fired++

		s.logger.Info("reminder fired",
			logger.String("event_id", d.Event.ID),
			logger.String("user_id", user.ID),
		)
	}

	return fired, nil
}
