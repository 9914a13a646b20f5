package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventZone/internal/domain"
)

func (r *EventRepository) AddEnquiry(ctx context.Context, eventID string, e domain.Enquiry) error {
	query := `INSERT INTO enquiries (id, event_id, email, subject, message, reply, version, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.ID, eventID, e.Email, e.Subject, e.Message, e.Reply, e.Version, e.CreatedAt,
	)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert enquiry: %w", err)
	}

	return nil
}

func (r *EventRepository) ReplyEnquiry(ctx context.Context, eventID, enquiryID, reply string, expectedVersion int) error {
	query := `UPDATE enquiries
			  SET reply = $1, version = version + 1
			  WHERE id = $2 AND event_id = $3 AND version = $4`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, reply, enquiryID, eventID, expectedVersion)
	if err != nil {
		return fmt.Errorf("update enquiry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	// Ничего не обновили: запись либо удалена, либо версия уже другая
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT EXISTS (SELECT 1 FROM enquiries WHERE id = $1 AND event_id = $2)`, enquiryID, eventID)
	if err != nil {
		return fmt.Errorf("check enquiry: %w", err)
	}
	var exists bool
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("scan enquiry check: %w", err)
	}
	if exists {
		return domain.ErrConflict
	}
	return domain.ErrEnquiryNotFound
}

func (r *EventRepository) DeleteEnquiry(ctx context.Context, eventID, enquiryID string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM enquiries WHERE id = $1 AND event_id = $2`, enquiryID, eventID)
	if err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}

	return expectOne(res, domain.ErrEnquiryNotFound)
}
