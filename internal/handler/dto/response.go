package dto

import (
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
)

const (
	StateOK          = "ok"
	StateEmpty       = "empty"
	StateFetchFailed = "fetch_failed"
)

type EventResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Category        string `json:"category"`
	Price           string `json:"price"`
	PosterURL       string `json:"poster_url"`
	VideoLink       string `json:"video_link,omitempty"`
	SpeakerName     string `json:"speaker_name"`
	CreatedBy       string `json:"created_by"`
	RegisteredCount int    `json:"registered_count"`
	Registered      bool   `json:"registered"`
	CreatedAt       string `json:"created_at"`
}

type EventDetailsResponse struct {
	EventResponse
	Enquiries []EnquiryResponse `json:"enquiries"`
}

// EventListResponse is the classified collection. State separates an empty
// collection from one that could not be read.
type EventListResponse struct {
	State   string          `json:"state"`
	Premium []EventResponse `json:"premium"`
	Normal  []EventResponse `json:"normal"`
	Expired []EventResponse `json:"expired"`
}

type CreatorEventsResponse struct {
	Premium []EventResponse `json:"premium"`
	Normal  []EventResponse `json:"normal"`
}

type CreatorStatsResponse struct {
	Events        int `json:"events"`
	Registrations int `json:"registrations"`
	Feedbacks     int `json:"feedbacks"`
	Enquiries     int `json:"enquiries"`
}

type EnquiryResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id,omitempty"`
	EventTitle string `json:"event_title,omitempty"`
	Index      int    `json:"index"`
	Email      string `json:"email,omitempty"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Reply      string `json:"reply"`
	Answered   bool   `json:"answered"`
	Timestamp  string `json:"timestamp"`
}

type EventEnquiriesResponse struct {
	EventID    string            `json:"event_id"`
	EventTitle string            `json:"event_title"`
	Enquiries  []EnquiryResponse `json:"enquiries"`
}

type FeedbackResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Feedback  string `json:"feedback"`
	Timestamp string `json:"timestamp"`
}

type EventFeedbackResponse struct {
	EventID    string             `json:"event_id"`
	EventTitle string             `json:"event_title"`
	Feedbacks  []FeedbackResponse `json:"feedbacks"`
}

type RegistrationResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}

type DecisionResponse struct {
	Verdict string `json:"verdict"`
	Reason  string `json:"reason,omitempty"`
	Amount  string `json:"amount"`
}

type RegisterResponse struct {
	Status   string           `json:"status"`
	Event    *EventResponse   `json:"event,omitempty"`
	Checkout *domain.Checkout `json:"checkout,omitempty"`
}

type PaymentResponse struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`
	EventID   string `json:"event_id,omitempty"`
	Months    int    `json:"months,omitempty"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	PhotoURL       string `json:"photo_url,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type TokenResponse struct {
	Token     string           `json:"token"`
	ExpiresAt string           `json:"expires_at"`
	Identity  *domain.Identity `json:"identity"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	State string `json:"state,omitempty"`
}

// ToEventResponse marks the event as registered when userID is in its list.
func ToEventResponse(e *domain.Event, userID string) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date,
		Time:            e.Time,
		Category:        string(e.Category),
		Price:           e.EffectivePrice().StringFixed(2),
		PosterURL:       e.PosterURL,
		VideoLink:       e.VideoLink,
		SpeakerName:     e.SpeakerName,
		CreatedBy:       e.CreatedBy,
		RegisteredCount: len(e.RegisteredUsers),
		Registered:      userID != "" && e.IsRegistered(userID),
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event, userID string) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e, userID))
	}
	return resp
}

// ToEventDetailsResponse lists the thread in reply-index order without author emails.
func ToEventDetailsResponse(e *domain.Event, userID string) EventDetailsResponse {
	thread := append([]domain.Enquiry(nil), e.Enquiries...)
	domain.SortEnquiries(thread)

	enquiries := make([]EnquiryResponse, 0, len(thread))
	for i, q := range thread {
		r := toEnquiryResponse(q)
		r.Index = i
		r.Email = ""
		enquiries = append(enquiries, r)
	}

	return EventDetailsResponse{
		EventResponse: ToEventResponse(e, userID),
		Enquiries:     enquiries,
	}
}

func ToEventListResponse(c domain.Classification, userID string) EventListResponse {
	state := StateOK
	if c.Len() == 0 {
		state = StateEmpty
	}
	return EventListResponse{
		State:   state,
		Premium: ToEventResponses(c.Premium, userID),
		Normal:  ToEventResponses(c.Normal, userID),
		Expired: ToEventResponses(c.Expired, userID),
	}
}

func ToCreatorEventsResponse(c domain.CreatorEvents) CreatorEventsResponse {
	return CreatorEventsResponse{
		Premium: ToEventResponses(c.Premium, ""),
		Normal:  ToEventResponses(c.Normal, ""),
	}
}

func toEnquiryResponse(q domain.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:        q.ID,
		Email:     q.Email,
		Subject:   q.Subject,
		Message:   q.Message,
		Reply:     q.Reply,
		Answered:  q.Answered(),
		Timestamp: q.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ToEnquiryResponse(q domain.Enquiry) EnquiryResponse {
	return toEnquiryResponse(q)
}

func ToEnquiryRefResponses(refs []domain.EnquiryRef) []EnquiryResponse {
	resp := make([]EnquiryResponse, 0, len(refs))
	for _, ref := range refs {
		r := toEnquiryResponse(ref.Enquiry)
		r.EventID = ref.EventID
		r.EventTitle = ref.EventTitle
		r.Index = ref.Index
		resp = append(resp, r)
	}
	return resp
}

func ToEventEnquiriesResponses(groups []domain.EventEnquiries) []EventEnquiriesResponse {
	resp := make([]EventEnquiriesResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, EventEnquiriesResponse{
			EventID:    g.EventID,
			EventTitle: g.EventTitle,
			Enquiries:  ToEnquiryRefResponses(g.Enquiries),
		})
	}
	return resp
}

func ToFeedbackResponse(f domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		UserID:    f.UserID,
		Email:     f.Email,
		Feedback:  f.Text,
		Timestamp: f.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ToEventFeedbackResponses(groups []domain.EventFeedback) []EventFeedbackResponse {
	resp := make([]EventFeedbackResponse, 0, len(groups))
	for _, g := range groups {
		items := make([]FeedbackResponse, 0, len(g.Feedbacks))
		for _, f := range g.Feedbacks {
			items = append(items, ToFeedbackResponse(f))
		}
		resp = append(resp, EventFeedbackResponse{EventID: g.EventID, EventTitle: g.EventTitle, Feedbacks: items})
	}
	return resp
}

func ToRegistrationResponses(regs []domain.Registration) []RegistrationResponse {
	resp := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, RegistrationResponse{
			UserID:       r.UserID,
			Email:        r.Email,
			RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
		})
	}
	return resp
}

func ToDecisionResponse(d domain.Decision) DecisionResponse {
	return DecisionResponse{
		Verdict: string(d.Verdict),
		Reason:  d.Reason,
		Amount:  d.Amount.StringFixed(2),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		OrderID:   p.OrderID,
		PaymentID: p.PaymentID,
		Purpose:   string(p.Purpose),
		Status:    string(p.Status),
		EventID:   p.EventID,
		Months:    p.Months,
		Amount:    p.AmountMinor,
		Currency:  p.Currency,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		Role:           string(u.Role),
		PhotoURL:       u.PhotoURL,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToTokenResponse(t *domain.AuthToken) TokenResponse {
	return TokenResponse{
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt.Format(time.RFC3339),
		Identity:  t.Identity,
	}
}
