// Package mongostore keeps the event collection in MongoDB, one document per event.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const eventsCollection = "events"

type EventStore struct {
	coll     *mongo.Collection
	strategy retry.Strategy
}

func NewEventStore(db *mongo.Database) *EventStore {
	return &EventStore{
		coll: db.Collection(eventsCollection),
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// EnsureIndexes creates the indexes the store's queries rely on.
func (s *EventStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func (s *EventStore) Create(ctx context.Context, e *domain.Event) error {
	if _, err := s.coll.InsertOne(ctx, toDoc(e)); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (s *EventStore) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var (
		d        eventDoc
		notFound bool
	)
	err := retry.Do(func() error {
		err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
		if errors.Is(err, mongo.ErrNoDocuments) {
			notFound = true
			return nil
		}
		return err
	}, s.strategy)
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	if notFound {
		return nil, domain.ErrEventNotFound
	}
	return fromDoc(d), nil
}

func (s *EventStore) List(ctx context.Context) ([]*domain.Event, error) {
	return s.find(ctx, bson.M{})
}

func (s *EventStore) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	return s.find(ctx, bson.M{"createdBy": creatorID})
}

// Update sets the scalar fields only, so arrays appended concurrently survive it.
func (s *EventStore) Update(ctx context.Context, e *domain.Event) error {
	d := toDoc(e)
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": e.ID}, bson.M{"$set": bson.M{
		"title":       d.Title,
		"description": d.Description,
		"date":        d.Date,
		"time":        d.Time,
		"category":    d.Category,
		"price":       d.Price,
		"posterUrl":   d.PosterURL,
		"videoLink":   d.VideoLink,
		"speakerName": d.SpeakerName,
		"updatedAt":   d.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (s *EventStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// AddRegistration pushes the entry only when no entry for the user exists yet.
// The filter and the push run as one atomic document update.
func (s *EventStore) AddRegistration(ctx context.Context, eventID string, r domain.Registration) (bool, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": eventID, "registeredUsers.userId": bson.M{"$ne": r.UserID}},
		bson.M{"$push": bson.M{"registeredUsers": toRegistrationDoc(r)}},
	)
	if err != nil {
		return false, fmt.Errorf("push registration: %w", err)
	}
	if res.ModifiedCount == 1 {
		return true, nil
	}

	if err = s.exists(ctx, bson.M{"_id": eventID}, domain.ErrEventNotFound); err != nil {
		return false, err
	}
	return false, nil
}

func (s *EventStore) AddEnquiry(ctx context.Context, eventID string, e domain.Enquiry) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{"$push": bson.M{"enquiries": toEnquiryDoc(e)}},
	)
	if err != nil {
		return fmt.Errorf("push enquiry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// ReplyEnquiry updates the single array element matched by id and version.
func (s *EventStore) ReplyEnquiry(ctx context.Context, eventID, enquiryID, reply string, expectedVersion int) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{
			"_id":       eventID,
			"enquiries": bson.M{"$elemMatch": bson.M{"id": enquiryID, "version": expectedVersion}},
		},
		bson.M{
			"$set": bson.M{"enquiries.$.reply": reply},
			"$inc": bson.M{"enquiries.$.version": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("reply enquiry: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	if err = s.exists(ctx, bson.M{"_id": eventID, "enquiries.id": enquiryID}, domain.ErrEnquiryNotFound); err != nil {
		return err
	}
	return domain.ErrConflict
}

func (s *EventStore) DeleteEnquiry(ctx context.Context, eventID, enquiryID string) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": eventID, "enquiries.id": enquiryID},
		bson.M{"$pull": bson.M{"enquiries": bson.M{"id": enquiryID}}},
	)
	if err != nil {
		return fmt.Errorf("pull enquiry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEnquiryNotFound
	}
	return nil
}

func (s *EventStore) AddFeedback(ctx context.Context, eventID string, f domain.Feedback) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{"$push": bson.M{"feedbacks": toFeedbackDoc(f)}},
	)
	if err != nil {
		return fmt.Errorf("push feedback: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (s *EventStore) find(ctx context.Context, filter bson.M) ([]*domain.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	var docs []eventDoc
	err := retry.Do(func() error {
		cursor, err := s.coll.Find(ctx, filter, opts)
		if err != nil {
			return err
		}
		docs = nil
		return cursor.All(ctx, &docs)
	}, s.strategy)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}

	res := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		res = append(res, fromDoc(d))
	}
	return res, nil
}

func (s *EventStore) exists(ctx context.Context, filter bson.M, notFound error) error {
	n, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
