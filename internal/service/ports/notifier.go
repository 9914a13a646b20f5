package ports

import (
	"context"

	"github.com/stpnv0/EventZone/internal/domain"
)

type Notifier interface {
	NotifyRegistered(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyReminder(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEnquiryReplied(ctx context.Context, user *domain.User, event *domain.Event, enquiry domain.Enquiry)
}
