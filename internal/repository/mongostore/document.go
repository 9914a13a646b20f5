package mongostore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EventZone/internal/domain"
)

// eventDoc is the stored shape of an event: one document with its
// registrations, enquiries and feedback embedded as arrays.
type eventDoc struct {
	ID              string            `bson:"_id"`
	Title           string            `bson:"title"`
	Description     string            `bson:"description"`
	Date            string            `bson:"date"`
	Time            string            `bson:"time"`
	Category        string            `bson:"category"`
	Price           string            `bson:"price"`
	PosterURL       string            `bson:"posterUrl"`
	VideoLink       string            `bson:"videoLink"`
	SpeakerName     string            `bson:"speakerName"`
	CreatedBy       string            `bson:"createdBy"`
	CreatorEmail    string            `bson:"creatorEmail"`
	RegisteredUsers []registrationDoc `bson:"registeredUsers"`
	Enquiries       []enquiryDoc      `bson:"enquiries"`
	Feedbacks       []feedbackDoc     `bson:"feedbacks"`
	CreatedAt       time.Time         `bson:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt"`
}

type registrationDoc struct {
	UserID       string    `bson:"userId"`
	Email        string    `bson:"email"`
	RegisteredAt time.Time `bson:"registeredAt"`
}

type enquiryDoc struct {
	ID        string    `bson:"id"`
	Email     string    `bson:"email"`
	Subject   string    `bson:"subject"`
	Message   string    `bson:"message"`
	Reply     string    `bson:"reply"`
	Version   int       `bson:"version"`
	Timestamp time.Time `bson:"timestamp"`
}

type feedbackDoc struct {
	UserID    string    `bson:"userId"`
	Email     string    `bson:"email"`
	Feedback  string    `bson:"feedback"`
	Timestamp time.Time `bson:"timestamp"`
}

func toDoc(e *domain.Event) eventDoc {
	d := eventDoc{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date,
		Time:            e.Time,
		Category:        string(e.Category),
		Price:           e.Price.String(),
		PosterURL:       e.PosterURL,
		VideoLink:       e.VideoLink,
		SpeakerName:     e.SpeakerName,
		CreatedBy:       e.CreatedBy,
		CreatorEmail:    e.CreatorEmail,
		RegisteredUsers: make([]registrationDoc, 0, len(e.RegisteredUsers)),
		Enquiries:       make([]enquiryDoc, 0, len(e.Enquiries)),
		Feedbacks:       make([]feedbackDoc, 0, len(e.Feedbacks)),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	for _, r := range e.RegisteredUsers {
		d.RegisteredUsers = append(d.RegisteredUsers, toRegistrationDoc(r))
	}
	for _, q := range e.Enquiries {
		d.Enquiries = append(d.Enquiries, toEnquiryDoc(q))
	}
	for _, f := range e.Feedbacks {
		d.Feedbacks = append(d.Feedbacks, toFeedbackDoc(f))
	}
	return d
}

func toRegistrationDoc(r domain.Registration) registrationDoc {
	return registrationDoc{UserID: r.UserID, Email: r.Email, RegisteredAt: r.RegisteredAt}
}

func toEnquiryDoc(q domain.Enquiry) enquiryDoc {
	return enquiryDoc{
		ID: q.ID, Email: q.Email, Subject: q.Subject, Message: q.Message,
		Reply: q.Reply, Version: q.Version, Timestamp: q.CreatedAt,
	}
}

func toFeedbackDoc(f domain.Feedback) feedbackDoc {
	return feedbackDoc{UserID: f.UserID, Email: f.Email, Feedback: f.Text, Timestamp: f.CreatedAt}
}

// fromDoc tolerates documents written by older clients: a missing or malformed
// price reads as zero and enquiries without a version start at 1.
func fromDoc(d eventDoc) *domain.Event {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		price = decimal.Zero
	}

	e := &domain.Event{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		Date:            d.Date,
		Time:            d.Time,
		Category:        domain.Category(d.Category),
		Price:           price,
		PosterURL:       d.PosterURL,
		VideoLink:       d.VideoLink,
		SpeakerName:     d.SpeakerName,
		CreatedBy:       d.CreatedBy,
		CreatorEmail:    d.CreatorEmail,
		RegisteredUsers: make([]domain.Registration, 0, len(d.RegisteredUsers)),
		Enquiries:       make([]domain.Enquiry, 0, len(d.Enquiries)),
		Feedbacks:       make([]domain.Feedback, 0, len(d.Feedbacks)),
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
	for _, r := range d.RegisteredUsers {
		e.RegisteredUsers = append(e.RegisteredUsers, domain.Registration{
			UserID: r.UserID, Email: r.Email, RegisteredAt: r.RegisteredAt.UTC(),
		})
	}
	for _, q := range d.Enquiries {
		version := q.Version
		if version == 0 {
			version = 1
		}
		e.Enquiries = append(e.Enquiries, domain.Enquiry{
			ID: q.ID, Email: q.Email, Subject: q.Subject, Message: q.Message,
			Reply: q.Reply, Version: version, CreatedAt: domain.Timestamp(q.Timestamp),
		})
	}
	for _, f := range d.Feedbacks {
		e.Feedbacks = append(e.Feedbacks, domain.Feedback{
			UserID: f.UserID, Email: f.Email, Text: f.Feedback, CreatedAt: f.Timestamp.UTC(),
		})
	}
	return e
}
