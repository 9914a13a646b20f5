// Package memory keeps the event collection in process memory. It backs local
// runs without a database and the concurrency tests of the registration commit.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stpnv0/EventZone/internal/domain"
)

type EventStore struct {
	mu     sync.RWMutex
	events map[string]*domain.Event
}

func NewEventStore() *EventStore {
	return &EventStore{events: make(map[string]*domain.Event)}
}

func (s *EventStore) Create(_ context.Context, e *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[e.ID] = clone(e)
	return nil
}

func (s *EventStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return clone(e), nil
}

func (s *EventStore) List(_ context.Context) ([]*domain.Event, error) {
	return s.filter(func(*domain.Event) bool { return true }), nil
}

func (s *EventStore) ListByCreator(_ context.Context, creatorID string) ([]*domain.Event, error) {
	return s.filter(func(e *domain.Event) bool { return e.CreatedBy == creatorID }), nil
}

// Update replaces the scalar fields only; nested lists are owned by their own writes.
func (s *EventStore) Update(_ context.Context, e *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}

	next := clone(e)
	next.RegisteredUsers = cur.RegisteredUsers
	next.Enquiries = cur.Enquiries
	next.Feedbacks = cur.Feedbacks
	s.events[e.ID] = next
	return nil
}

func (s *EventStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *EventStore) AddRegistration(_ context.Context, eventID string, r domain.Registration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return false, domain.ErrEventNotFound
	}

	var added bool
	e.RegisteredUsers, added = domain.AddRegistration(e.RegisteredUsers, r)
	return added, nil
}

func (s *EventStore) AddEnquiry(_ context.Context, eventID string, enq domain.Enquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.Enquiries = append(e.Enquiries, enq)
	return nil
}

func (s *EventStore) ReplyEnquiry(_ context.Context, eventID, enquiryID, reply string, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	for i := range e.Enquiries {
		if e.Enquiries[i].ID != enquiryID {
			continue
		}
		if e.Enquiries[i].Version != expectedVersion {
			return domain.ErrConflict
		}
		e.Enquiries[i].Reply = reply
		e.Enquiries[i].Version++
		return nil
	}
	return domain.ErrEnquiryNotFound
}

func (s *EventStore) DeleteEnquiry(_ context.Context, eventID, enquiryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	for i := range e.Enquiries {
		if e.Enquiries[i].ID == enquiryID {
			e.Enquiries = append(e.Enquiries[:i:i], e.Enquiries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEnquiryNotFound
}

func (s *EventStore) AddFeedback(_ context.Context, eventID string, f domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.Feedbacks = append(e.Feedbacks, f)
	return nil
}

func (s *EventStore) filter(keep func(*domain.Event) bool) []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Event, 0, len(s.events))
	for _, e := range s.events {
		if keep(e) {
			res = append(res, clone(e))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Date != res[j].Date {
			return res[i].Date < res[j].Date
		}
		if res[i].Time != res[j].Time {
			return res[i].Time < res[j].Time
		}
		return res[i].ID < res[j].ID
	})
	return res
}

func clone(e *domain.Event) *domain.Event {
	c := *e
	c.RegisteredUsers = append([]domain.Registration{}, e.RegisteredUsers...)
	c.Enquiries = append([]domain.Enquiry{}, e.Enquiries...)
	c.Feedbacks = append([]domain.Feedback{}, e.Feedbacks...)
	return &c
}
