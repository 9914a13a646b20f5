package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/handler/dto"
	"github.com/stpnv0/EventZone/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	FetchAndClassify(ctx context.Context, now time.Time) (domain.Classification, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, ident *domain.Identity, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, ident *domain.Identity, eventID string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, ident *domain.Identity, eventID string) error
	ListByCreator(ctx context.Context, ident *domain.Identity) (domain.CreatorEvents, error)
	Stats(ctx context.Context, ident *domain.Identity) (domain.CreatorStats, error)
	RegisteredFor(ctx context.Context, ident *domain.Identity) ([]*domain.Event, error)
	Registrations(ctx context.Context, ident *domain.Identity, eventID string) ([]domain.Registration, error)
}

type RegistrationSvc interface {
	Eligibility(ctx context.Context, ident *domain.Identity, eventID string) (domain.Decision, error)
	Register(ctx context.Context, ident *domain.Identity, eventID string) (*domain.Event, error)
}

type PaymentSvc interface {
	ChargeEvent(ctx context.Context, ident *domain.Identity, eventID string) (*domain.Checkout, error)
	ChargeVIP(ctx context.Context, ident *domain.Identity, months int) (*domain.Checkout, error)
	Confirm(ctx context.Context, ident *domain.Identity, proof domain.PaymentProof) (*domain.Payment, error)
}

type EnquirySvc interface {
	Submit(ctx context.Context, ident *domain.Identity, eventID, subject, message string) (*domain.Enquiry, error)
	Reply(ctx context.Context, ident *domain.Identity, eventID string, index int, text, guardID string) (*domain.Enquiry, error)
	Delete(ctx context.Context, ident *domain.Identity, eventID string, ts time.Time) error
	ListMine(ctx context.Context, ident *domain.Identity) ([]domain.EnquiryRef, error)
	ListForCreator(ctx context.Context, ident *domain.Identity) ([]domain.EventEnquiries, error)
}

type FeedbackSvc interface {
	Submit(ctx context.Context, ident *domain.Identity, eventID, text string) (*domain.Feedback, error)
	ListForCreator(ctx context.Context, ident *domain.Identity) ([]domain.EventFeedback, error)
}

type AuthSvc interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.AuthToken, error)
	SignOut(ctx context.Context, ident *domain.Identity) error
}

type UploadSvc interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	paymentService      PaymentSvc
	enquiryService      EnquirySvc
	feedbackService     FeedbackSvc
	authService         AuthSvc
	uploadService       UploadSvc
	maxUploadBytes      int64
	now                 func() time.Time
}

type Services struct {
	Events        EventSvc
	Registrations RegistrationSvc
	Payments      PaymentSvc
	Enquiries     EnquirySvc
	Feedback      FeedbackSvc
	Auth          AuthSvc
	Uploads       UploadSvc
}

func NewHandler(s Services, maxUploadBytes int64) *Handler {
	return &Handler{
		eventService:        s.Events,
		registrationService: s.Registrations,
		paymentService:      s.Payments,
		enquiryService:      s.Enquiries,
		feedbackService:     s.Feedback,
		authService:         s.Auth,
		uploadService:       s.Uploads,
		maxUploadBytes:      maxUploadBytes,
		now:                 time.Now,
	}
}

// eventID validates the :id path parameter and writes 400 when it is not a uuid.
func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func userID(ident *domain.Identity) string {
	if ident == nil {
		return ""
	}
	return ident.UserID
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEnquiryNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrAmbiguousEnquiry),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrPaymentNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrRegistrationBlocked),
		errors.Is(err, domain.ErrNotRegistered),
		errors.Is(err, domain.ErrFeedbackClosed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentVerification),
		errors.Is(err, domain.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrFetchFailed):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error(), State: dto.StateFetchFailed})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func identity(c *ginext.Context) *domain.Identity {
	return middleware.Identity(c)
}
