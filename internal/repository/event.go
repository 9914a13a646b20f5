package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const pgForeignKeyViolation = "23503"

// EventRepository keeps the event collection in Postgres. Registrations, enquiries
// and feedback live in their own tables and are stitched back onto the event on read.
type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, title, description, date, time, category, price, poster_url,
		video_link, speaker_name, created_by, creator_email, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	if err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Category, &e.Price, &e.PosterURL,
		&e.VideoLink, &e.SpeakerName, &e.CreatedBy, &e.CreatorEmail, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.RegisteredUsers = []domain.Registration{}
	e.Enquiries = []domain.Enquiry{}
	e.Feedbacks = []domain.Feedback{}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.Time, e.Category, e.Price, e.PosterURL,
		e.VideoLink, e.SpeakerName, e.CreatedBy, e.CreatorEmail, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if err = r.attach(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY date, time`
	return r.list(ctx, query)
}

func (r *EventRepository) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE created_by = $1
			  ORDER BY date, time`
	return r.list(ctx, query, creatorID)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, date = $4, time = $5, category = $6, price = $7,
			      poster_url = $8, video_link = $9, speaker_name = $10, updated_at = $11
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.Time, e.Category, e.Price,
		e.PosterURL, e.VideoLink, e.SpeakerName, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

// Delete removes the event; child rows go with it through ON DELETE CASCADE.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if err = r.attach(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// attach loads the nested lists of every event in one query per child table.
func (r *EventRepository) attach(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	regRows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT event_id, user_id, email, registered_at
		 FROM registrations
		 WHERE event_id = ANY($1)
		 ORDER BY registered_at`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load registrations: %w", err)
	}
	defer regRows.Close()
	for regRows.Next() {
		var eventID string
		var reg domain.Registration
		if err = regRows.Scan(&eventID, &reg.UserID, &reg.Email, &reg.RegisteredAt); err != nil {
			return fmt.Errorf("scan registration: %w", err)
		}
		reg.RegisteredAt = reg.RegisteredAt.UTC()
		byID[eventID].RegisteredUsers = append(byID[eventID].RegisteredUsers, reg)
	}
	if err = regRows.Err(); err != nil {
		return fmt.Errorf("iterate registrations: %w", err)
	}

	enqRows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT event_id, id, email, subject, message, reply, version, created_at
		 FROM enquiries
		 WHERE event_id = ANY($1)
		 ORDER BY created_at, id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load enquiries: %w", err)
	}
	defer enqRows.Close()
	for enqRows.Next() {
		var eventID string
		var enq domain.Enquiry
		if err = enqRows.Scan(&eventID, &enq.ID, &enq.Email, &enq.Subject, &enq.Message, &enq.Reply, &enq.Version, &enq.CreatedAt); err != nil {
			return fmt.Errorf("scan enquiry: %w", err)
		}
		enq.CreatedAt = domain.Timestamp(enq.CreatedAt)
		byID[eventID].Enquiries = append(byID[eventID].Enquiries, enq)
	}
	if err = enqRows.Err(); err != nil {
		return fmt.Errorf("iterate enquiries: %w", err)
	}

	fbRows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT event_id, user_id, email, text, created_at
		 FROM feedbacks
		 WHERE event_id = ANY($1)
		 ORDER BY created_at, id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load feedbacks: %w", err)
	}
	defer fbRows.Close()
	for fbRows.Next() {
		var eventID string
		var fb domain.Feedback
		if err = fbRows.Scan(&eventID, &fb.UserID, &fb.Email, &fb.Text, &fb.CreatedAt); err != nil {
			return fmt.Errorf("scan feedback: %w", err)
		}
		fb.CreatedAt = fb.CreatedAt.UTC()
		byID[eventID].Feedbacks = append(byID[eventID].Feedbacks, fb)
	}

	return fbRows.Err()
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isPgError(err error, code pq.ErrorCode) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == code
}
