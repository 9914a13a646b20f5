package mongostore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// legacyEnquiries matches events holding an enquiry with no id or no version.
// $in with nil also matches a missing field.
var legacyEnquiries = bson.M{"enquiries": bson.M{"$elemMatch": bson.M{"$or": bson.A{
	bson.M{"id": bson.M{"$in": bson.A{nil, ""}}},
	bson.M{"version": bson.M{"$in": bson.A{nil, 0}}},
}}}}

type legacyEvent struct {
	ID        any      `bson:"_id"`
	Enquiries []bson.M `bson:"enquiries"`
}

// BackfillEnquiries assigns an id and version 1 to enquiries stored without them,
// so reply and delete can address them. It returns the number of enquiries patched.
func (s *EventStore) BackfillEnquiries(ctx context.Context) (int, error) {
	cursor, err := s.coll.Find(ctx, legacyEnquiries, options.Find().SetProjection(bson.M{"enquiries": 1}))
	if err != nil {
		return 0, fmt.Errorf("find legacy enquiries: %w", err)
	}
	defer cursor.Close(ctx)

	patched := 0
	for cursor.Next(ctx) {
		var doc legacyEvent
		if err = cursor.Decode(&doc); err != nil {
			return patched, fmt.Errorf("decode legacy event: %w", err)
		}

		for i, raw := range doc.Enquiries {
			filter, set, ok := enquiryPatch(i, raw, uuid.NewString)
			if !ok {
				continue
			}
			filter["_id"] = doc.ID

			// фильтр по позиции и содержимому: если массив сдвинулся, элемент просто пропускается
			res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
			if err != nil {
				return patched, fmt.Errorf("patch enquiry: %w", err)
			}
			patched += int(res.ModifiedCount)
		}
	}
	if err = cursor.Err(); err != nil {
		return patched, fmt.Errorf("iterate legacy events: %w", err)
	}

	return patched, nil
}

// enquiryPatch builds the positional filter and $set for the enquiry at index i.
// ok is false when the enquiry already has an id and a version.
func enquiryPatch(i int, raw bson.M, newID func() string) (filter, set bson.M, ok bool) {
	prefix := fmt.Sprintf("enquiries.%d.", i)
	filter, set = bson.M{}, bson.M{}

	if id, _ := raw["id"].(string); id == "" {
		set[prefix+"id"] = newID()
		filter[prefix+"id"] = bson.M{"$in": bson.A{nil, ""}}
	}
	if versionOf(raw["version"]) == 0 {
		set[prefix+"version"] = 1
		filter[prefix+"version"] = bson.M{"$in": bson.A{nil, 0}}
	}
	if len(set) == 0 {
		return nil, nil, false
	}

	for _, key := range []string{"email", "timestamp"} {
		if v, present := raw[key]; present {
			filter[prefix+key] = v
		}
	}
	return filter, set, true
}

func versionOf(v any) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
