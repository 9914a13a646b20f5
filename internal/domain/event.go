package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryNormal  Category = "normal"
	CategoryPremium Category = "premium"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DefaultPremiumPrice is charged when a premium event was published without a price.
var DefaultPremiumPrice = decimal.NewFromInt(199)

type Event struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Category        Category        `json:"category"`
	Price           decimal.Decimal `json:"price"`
	PosterURL       string          `json:"poster_url"`
	VideoLink       string          `json:"video_link"`
	SpeakerName     string          `json:"speaker_name"`
	CreatedBy       string          `json:"created_by"`
	CreatorEmail    string          `json:"creator_email"`
	RegisteredUsers []Registration  `json:"registered_users"`
	Enquiries       []Enquiry       `json:"enquiries"`
	Feedbacks       []Feedback      `json:"feedbacks"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ScheduledAt combines the stored date and time strings in loc.
func (e *Event) ScheduledAt(loc *time.Location) (time.Time, error) {
	return ParseSchedule(e.Date, e.Time, loc)
}

// Expired reports whether the event started strictly before now.
// An unparseable schedule is treated as expired so it can never be registered for.
func (e *Event) Expired(now time.Time, loc *time.Location) bool {
	at, err := e.ScheduledAt(loc)
	if err != nil {
		return true
	}
	return at.Before(now)
}

func (e *Event) IsPremium() bool {
	return e.Category == CategoryPremium
}

// EffectivePrice is zero for normal events.
func (e *Event) EffectivePrice() decimal.Decimal {
	if !e.IsPremium() {
		return decimal.Zero
	}
	if e.Price.IsPositive() {
		return e.Price
	}
	return DefaultPremiumPrice
}

func (e *Event) IsRegistered(userID string) bool {
	for _, r := range e.RegisteredUsers {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

func ParseSchedule(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid schedule %q %q", ErrValidation, date, clock)
	}
	return t, nil
}

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryNormal, "":
		return CategoryNormal, nil
	case CategoryPremium:
		return CategoryPremium, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
	}
}

type CreateEventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Category    string
	Price       decimal.Decimal
	PosterURL   string
	VideoLink   string
	SpeakerName string
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Category    *string
	Price       *decimal.Decimal
	PosterURL   *string
	VideoLink   *string
	SpeakerName *string
}

// Classification partitions a snapshot of the collection; every event lands in exactly one bucket.
type Classification struct {
	Premium []*Event `json:"premium"`
	Normal  []*Event `json:"normal"`
	Expired []*Event `json:"expired"`
}

func (c Classification) Len() int {
	return len(c.Premium) + len(c.Normal) + len(c.Expired)
}

func Classify(events []*Event, now time.Time, loc *time.Location) Classification {
	c := Classification{
		Premium: make([]*Event, 0),
		Normal:  make([]*Event, 0),
		Expired: make([]*Event, 0),
	}
	for _, e := range events {
		switch {
		case e.Expired(now, loc):
			c.Expired = append(c.Expired, e)
		case e.IsPremium():
			c.Premium = append(c.Premium, e)
		default:
			c.Normal = append(c.Normal, e)
		}
	}
	return c
}

// CreatorEvents is a creator's own catalogue, latest time of day first.
type CreatorEvents struct {
	Premium []*Event `json:"premium"`
	Normal  []*Event `json:"normal"`
}

// CreatorStats are the dashboard totals over a creator's events.
type CreatorStats struct {
	Events        int `json:"events"`
	Registrations int `json:"registrations"`
	Feedbacks     int `json:"feedbacks"`
	Enquiries     int `json:"enquiries"`
}

func (c CreatorEvents) Stats() CreatorStats {
	var st CreatorStats
	for _, list := range [][]*Event{c.Premium, c.Normal} {
		for _, e := range list {
			st.Events++
			st.Registrations += len(e.RegisteredUsers)
			st.Feedbacks += len(e.Feedbacks)
			st.Enquiries += len(e.Enquiries)
		}
	}
	return st
}
