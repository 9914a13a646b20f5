package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/metrics"
	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EnquiryService struct {
	eventRepo   ports.EventRepo
	enquiryRepo ports.EnquiryRepo
	userRepo    ports.UserRepo
	notifier    ports.Notifier
	logger      logger.Logger
	now         func() time.Time
}

func NewEnquiryService(
	eventRepo ports.EventRepo,
	enquiryRepo ports.EnquiryRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *EnquiryService {
	return &EnquiryService{
		eventRepo:   eventRepo,
		enquiryRepo: enquiryRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *EnquiryService) Submit(ctx context.Context, ident *domain.Identity, eventID, subject, message string) (*domain.Enquiry, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, fmt.Errorf("%w: subject and message are required", domain.ErrValidation)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	enq := domain.Enquiry{
		ID:        uuid.New().String(),
		Email:     ident.Email,
		Subject:   subject,
		Message:   message,
		CreatedAt: domain.Timestamp(s.now()),
		Reply:     "",
		Version:   1,
	}
	if err := s.enquiryRepo.AddEnquiry(ctx, eventID, enq); err != nil {
		return nil, fmt.Errorf("add enquiry: %w", err)
	}

	s.logger.Info("enquiry submitted",
		logger.String("event_id", eventID),
		logger.String("enquiry_id", enq.ID),
	)
	return &enq, nil
}

// Reply answers the enquiry at position index of the event's thread, in creation order.
// guardID, when set, must name the enquiry the caller saw at that position.
// The write is conditional on the enquiry's version, so a concurrent reply surfaces as domain.ErrConflict.
func (s *EnquiryService) Reply(ctx context.Context, ident *domain.Identity, eventID string, index int, text, guardID string) (*domain.Enquiry, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: reply text is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != ident.UserID {
		return nil, fmt.Errorf("%w: only the event creator can reply", domain.ErrForbidden)
	}

	thread := append([]domain.Enquiry(nil), event.Enquiries...)
	domain.SortEnquiries(thread)
	if index < 0 || index >= len(thread) {
		return nil, domain.ErrEnquiryNotFound
	}

	target := thread[index]
	if guardID != "" && guardID != target.ID {
		metrics.WriteConflict("enquiry_index")
		return nil, fmt.Errorf("%w: enquiry at position %d changed", domain.ErrConflict, index)
	}

	if err = s.enquiryRepo.ReplyEnquiry(ctx, eventID, target.ID, text, target.Version); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.WriteConflict("enquiry_reply")
			s.logger.Warn("enquiry reply conflict",
				logger.String("event_id", eventID),
				logger.String("enquiry_id", target.ID),
			)
		}
		return nil, fmt.Errorf("reply enquiry: %w", err)
	}

	target.Reply = text
	target.Version++

	if asker, err := s.userRepo.GetByEmail(ctx, target.Email); err == nil {
		go s.notifier.NotifyEnquiryReplied(context.WithoutCancel(ctx), asker, event, target)
	} else {
		s.logger.Debug("enquiry author not notified",
			logger.String("enquiry_id", target.ID),
			logger.String("error", err.Error()),
		)
	}

	return &target, nil
}

// Delete removes the caller's enquiry created exactly at ts.
// Nothing is deleted when no enquiry or more than one enquiry matches.
func (s *EnquiryService) Delete(ctx context.Context, ident *domain.Identity, eventID string, ts time.Time) error {
	if ident == nil {
		return domain.ErrUnauthorized
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	matches := domain.MatchTimestamp(event.Enquiries, ident.Email, domain.Timestamp(ts))
	switch {
	case len(matches) == 0:
		return domain.ErrEnquiryNotFound
	case len(matches) > 1:
		return domain.ErrAmbiguousEnquiry
	}

	target := event.Enquiries[matches[0]]
	if err = s.enquiryRepo.DeleteEnquiry(ctx, eventID, target.ID); err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}

	s.logger.Info("enquiry deleted",
		logger.String("event_id", eventID),
		logger.String("enquiry_id", target.ID),
	)
	return nil
}

// ListMine returns the caller's enquiries across all events, newest first.
func (s *EnquiryService) ListMine(ctx context.Context, ident *domain.Identity) ([]domain.EnquiryRef, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	for _, e := range events {
		domain.SortEnquiries(e.Enquiries)
	}

	return domain.EnquiriesByEmail(events, ident.Email), nil
}

func (s *EnquiryService) ListForCreator(ctx context.Context, ident *domain.Identity) ([]domain.EventEnquiries, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.eventRepo.ListByCreator(ctx, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("list creator events: %w", err)
	}

	res := make([]domain.EventEnquiries, 0)
	for _, e := range events {
		if len(e.Enquiries) == 0 {
			continue
		}
		domain.SortEnquiries(e.Enquiries)

		group := domain.EventEnquiries{EventID: e.ID, EventTitle: e.Title}
		for i, enq := range e.Enquiries {
			group.Enquiries = append(group.Enquiries, domain.EnquiryRef{
				Enquiry:    enq,
				EventID:    e.ID,
				EventTitle: e.Title,
				Index:      i,
			})
		}
		res = append(res, group)
	}

	return res, nil
}
