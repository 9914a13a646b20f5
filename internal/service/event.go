package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/metrics"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo   ports.EventRepo
	loc    *time.Location
	logger logger.Logger
	now    func() time.Time
}

func NewEventService(repo ports.EventRepo, loc *time.Location, logger logger.Logger) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		repo:   repo,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// FetchAndClassify reads the whole collection and partitions it at now.
// A failed read is reported as domain.ErrFetchFailed, never as an empty result.
func (s *EventService) FetchAndClassify(ctx context.Context, now time.Time) (domain.Classification, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		metrics.FetchFailed()
		s.logger.Error("failed to fetch events",
			logger.String("error", err.Error()),
		)
		return domain.Classification{}, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	return domain.Classify(events, now, s.loc), nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, ident *domain.Identity, input domain.CreateEventInput) (*domain.Event, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}
	if ident.Role != domain.RoleCreator {
		return nil, fmt.Errorf("%w: only creators can publish events", domain.ErrForbidden)
	}

	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		Date:            strings.TrimSpace(input.Date),
		Time:            strings.TrimSpace(input.Time),
		Price:           input.Price,
		PosterURL:       input.PosterURL,
		VideoLink:       input.VideoLink,
		SpeakerName:     input.SpeakerName,
		CreatedBy:       ident.UserID,
		CreatorEmail:    ident.Email,
		RegisteredUsers: []domain.Registration{},
		Enquiries:       []domain.Enquiry{},
		Feedbacks:       []domain.Feedback{},
		CreatedAt:       s.now().UTC(),
	}
	event.UpdatedAt = event.CreatedAt

	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}
	event.Category = category

	if err = s.validate(event); err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("creator_id", ident.UserID),
		logger.String("category", string(event.Category)),
	)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, ident *domain.Identity, eventID string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.owned(ctx, ident, eventID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Date != nil {
		event.Date = strings.TrimSpace(*input.Date)
	}
	if input.Time != nil {
		event.Time = strings.TrimSpace(*input.Time)
	}
	if input.Category != nil {
		if event.Category, err = domain.ParseCategory(*input.Category); err != nil {
			return nil, err
		}
	}
	if input.Price != nil {
		event.Price = *input.Price
	}
	if input.PosterURL != nil {
		event.PosterURL = *input.PosterURL
	}
	if input.VideoLink != nil {
		event.VideoLink = *input.VideoLink
	}
	if input.SpeakerName != nil {
		event.SpeakerName = *input.SpeakerName
	}

	if err = s.validate(event); err != nil {
		return nil, err
	}
	event.UpdatedAt = s.now().UTC()

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, ident *domain.Identity, eventID string) error {
	if _, err := s.owned(ctx, ident, eventID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", eventID),
		logger.String("creator_id", ident.UserID),
	)
	return nil
}

func (s *EventService) ListByCreator(ctx context.Context, ident *domain.Identity) (domain.CreatorEvents, error) {
	if ident == nil {
		return domain.CreatorEvents{}, domain.ErrUnauthorized
	}

	events, err := s.repo.ListByCreator(ctx, ident.UserID)
	if err != nil {
		return domain.CreatorEvents{}, fmt.Errorf("list creator events: %w", err)
	}

	res := domain.CreatorEvents{Premium: make([]*domain.Event, 0), Normal: make([]*domain.Event, 0)}
	for _, e := range events {
		if e.IsPremium() {
			res.Premium = append(res.Premium, e)
		} else {
			res.Normal = append(res.Normal, e)
		}
	}
	sortByClockDesc(res.Premium)
	sortByClockDesc(res.Normal)

	return res, nil
}

func (s *EventService) Stats(ctx context.Context, ident *domain.Identity) (domain.CreatorStats, error) {
	events, err := s.ListByCreator(ctx, ident)
	if err != nil {
		return domain.CreatorStats{}, err
	}
	return events.Stats(), nil
}

// RegisteredFor lists the events the caller is registered for.
func (s *EventService) RegisteredFor(ctx context.Context, ident *domain.Identity) ([]*domain.Event, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	res := make([]*domain.Event, 0)
	for _, e := range events {
		if e.IsRegistered(ident.UserID) {
			res = append(res, e)
		}
	}
	return res, nil
}

// Registrations returns the attendee list of one of the caller's events.
func (s *EventService) Registrations(ctx context.Context, ident *domain.Identity, eventID string) ([]domain.Registration, error) {
	event, err := s.owned(ctx, ident, eventID)
	if err != nil {
		return nil, err
	}
	return event.RegisteredUsers, nil
}

func (s *EventService) owned(ctx context.Context, ident *domain.Identity, eventID string) (*domain.Event, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.CreatedBy != ident.UserID {
		return nil, fmt.Errorf("%w: event belongs to another creator", domain.ErrForbidden)
	}
	return event, nil
}

func (s *EventService) validate(e *domain.Event) error {
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if _, err := e.ScheduledAt(s.loc); err != nil {
		return err
	}
	if e.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if !e.IsPremium() {
		e.Price = decimal.Zero
	}
	return nil
}

func sortByClockDesc(events []*domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return clockMinutes(events[i].Time) > clockMinutes(events[j].Time)
	})
}

func clockMinutes(clock string) int {
	t, err := time.Parse(domain.TimeLayout, strings.TrimSpace(clock))
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}
