package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type FeedbackService struct {
	eventRepo    ports.EventRepo
	feedbackRepo ports.FeedbackRepo
	loc          *time.Location
	logger       logger.Logger
	now          func() time.Time
}

func NewFeedbackService(eventRepo ports.EventRepo, feedbackRepo ports.FeedbackRepo, loc *time.Location, logger logger.Logger) *FeedbackService {
	if loc == nil {
		loc = time.UTC
	}
	return &FeedbackService{
		eventRepo:    eventRepo,
		feedbackRepo: feedbackRepo,
		loc:          loc,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit accepts feedback from a registered attendee once the event's grace window is over.
func (s *FeedbackService) Submit(ctx context.Context, ident *domain.Identity, eventID, text string) (*domain.Feedback, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: feedback text is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsRegistered(ident.UserID) {
		return nil, domain.ErrNotRegistered
	}

	now := s.now()
	if !event.FeedbackOpen(now, s.loc) {
		return nil, domain.ErrFeedbackClosed
	}

	fb := domain.Feedback{
		UserID:    ident.UserID,
		Email:     ident.Email,
		Text:      text,
		CreatedAt: domain.Timestamp(now),
	}
	if err = s.feedbackRepo.AddFeedback(ctx, eventID, fb); err != nil {
		return nil, fmt.Errorf("add feedback: %w", err)
	}

	s.logger.Info("feedback submitted",
		logger.String("event_id", eventID),
		logger.String("user_id", ident.UserID),
	)
	return &fb, nil
}

func (s *FeedbackService) ListForCreator(ctx context.Context, ident *domain.Identity) ([]domain.EventFeedback, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.eventRepo.ListByCreator(ctx, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("list creator events: %w", err)
	}

	res := make([]domain.EventFeedback, 0)
	for _, e := range events {
		if len(e.Feedbacks) == 0 {
			continue
		}
		res = append(res, domain.EventFeedback{EventID: e.ID, EventTitle: e.Title, Feedbacks: e.Feedbacks})
	}
	return res, nil
}
