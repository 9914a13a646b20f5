package domain

import "time"

// FeedbackGrace is how long after the start an event stays open before feedback is accepted.
const FeedbackGrace = 45 * time.Minute

type Feedback struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Text      string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

type EventFeedback struct {
	EventID    string     `json:"event_id"`
	EventTitle string     `json:"event_title"`
	Feedbacks  []Feedback `json:"feedbacks"`
}

// FeedbackOpen reports whether the event has ended its grace window at now.
func (e *Event) FeedbackOpen(now time.Time, loc *time.Location) bool {
	at, err := e.ScheduledAt(loc)
	if err != nil {
		return false
	}
	return now.After(at.Add(FeedbackGrace))
}
