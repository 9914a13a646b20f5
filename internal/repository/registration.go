package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventZone/internal/domain"
)

// AddRegistration inserts one row per (event, user). The primary key turns a
// repeated or concurrent insert into a no-op, reported as false.
func (r *EventRepository) AddRegistration(ctx context.Context, eventID string, reg domain.Registration) (bool, error) {
	query := `INSERT INTO registrations (event_id, user_id, email, registered_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (event_id, user_id) DO NOTHING`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, reg.UserID, reg.Email, reg.RegisteredAt)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return false, domain.ErrEventNotFound
		}
		return false, fmt.Errorf("insert registration: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}
