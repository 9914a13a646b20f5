package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventZone/internal/domain"
)

func (r *EventRepository) AddFeedback(ctx context.Context, eventID string, f domain.Feedback) error {
	query := `INSERT INTO feedbacks (event_id, user_id, email, text, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, f.UserID, f.Email, f.Text, f.CreatedAt)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert feedback: %w", err)
	}

	return nil
}
