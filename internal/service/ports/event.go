package ports

import (
	"context"

	"github.com/stpnv0/EventZone/internal/domain"
)

// EventRepo reads and writes whole events. Reads return the nested
// registrations, enquiries and feedback.
type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

// RegistrationRepo appends registrations; the add is conditional on the user not being registered.
type RegistrationRepo interface {
	AddRegistration(ctx context.Context, eventID string, r domain.Registration) (bool, error)
}

type EnquiryRepo interface {
	AddEnquiry(ctx context.Context, eventID string, e domain.Enquiry) error
	// ReplyEnquiry writes the reply only if the stored version still equals expectedVersion.
	ReplyEnquiry(ctx context.Context, eventID, enquiryID, reply string, expectedVersion int) error
	DeleteEnquiry(ctx context.Context, eventID, enquiryID string) error
}

type FeedbackRepo interface {
	AddFeedback(ctx context.Context, eventID string, f domain.Feedback) error
}
