package domain

import (
	"sort"
	"strings"
	"time"
)

type Enquiry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Reply     string    `json:"reply"`
	Version   int       `json:"version"`
}

func (e Enquiry) Answered() bool {
	return e.Reply != ""
}

// EnquiryRef is an enquiry seen from outside its event.
type EnquiryRef struct {
	Enquiry
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	Index      int    `json:"index"`
}

// EventEnquiries groups the thread of one event for its creator.
type EventEnquiries struct {
	EventID    string       `json:"event_id"`
	EventTitle string       `json:"event_title"`
	Enquiries  []EnquiryRef `json:"enquiries"`
}

// Timestamp truncates t to the precision every backend can round-trip,
// so a timestamp read back compares equal to the one that was written.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// SortEnquiries orders a thread by creation time; positions in this order are reply indexes.
func SortEnquiries(list []Enquiry) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}

// EnquiriesByEmail collects the enquiries written by email across events, newest first.
func EnquiriesByEmail(events []*Event, email string) []EnquiryRef {
	email = strings.ToLower(strings.TrimSpace(email))
	res := make([]EnquiryRef, 0)
	if email == "" {
		return res
	}

	for _, ev := range events {
		for i, enq := range ev.Enquiries {
			if strings.ToLower(enq.Email) != email {
				continue
			}
			res = append(res, EnquiryRef{Enquiry: enq, EventID: ev.ID, EventTitle: ev.Title, Index: i})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}

// MatchTimestamp returns the positions of enquiries owned by email created exactly at ts.
func MatchTimestamp(list []Enquiry, email string, ts time.Time) []int {
	email = strings.ToLower(email)
	var idx []int
	for i, enq := range list {
		if strings.ToLower(enq.Email) == email && enq.CreatedAt.Equal(ts) {
			idx = append(idx, i)
		}
	}
	return idx
}
