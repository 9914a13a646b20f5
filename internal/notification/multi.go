package notification

import (
	"context"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/service/ports"
)

// Multi delivers each notification through every channel in order.
type Multi []ports.Notifier

func (m Multi) NotifyRegistered(ctx context.Context, user *domain.User, event *domain.Event) {
	for _, n := range m {
		n.NotifyRegistered(ctx, user, event)
	}
}

func (m Multi) NotifyReminder(ctx context.Context, user *domain.User, event *domain.Event) {
	for _, n := range m {
		n.NotifyReminder(ctx, user, event)
	}
}

func (m Multi) NotifyEnquiryReplied(ctx context.Context, user *domain.User, event *domain.Event, enquiry domain.Enquiry) {
	for _, n := range m {
		n.NotifyEnquiryReplied(ctx, user, event, enquiry)
	}
}
