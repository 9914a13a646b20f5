package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const userColumns = `id, email, username, password_hash, role, photo_url, telegram_chat_id,
		sub_order_id, sub_months, sub_started_at, sub_ends_at, created_at`

func scanUser(s scanner) (*domain.User, error) {
	var (
		u         domain.User
		orderID   sql.NullString
		months    sql.NullInt64
		startedAt sql.NullTime
		endsAt    sql.NullTime
	)
	if err := s.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Role, &u.PhotoURL, &u.TelegramChatID,
		&orderID, &months, &startedAt, &endsAt, &u.CreatedAt,
	); err != nil {
		return nil, err
	}

	if orderID.Valid {
		u.Subscription = &domain.Subscription{
			OrderID:   orderID.String,
			Months:    int(months.Int64),
			StartedAt: startedAt.Time.UTC(),
			EndsAt:    endsAt.Time.UTC(),
		}
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, username, password_hash, role, photo_url, telegram_chat_id, created_at)
 			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Email, user.Username, user.PasswordHash, user.Role, user.PhotoURL, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// SetSubscription stores the role together with the subscription that grants it.
func (r *UserRepository) SetSubscription(ctx context.Context, userID string, role domain.Role, sub domain.Subscription) error {
	query := `UPDATE users
			  SET role = $2, sub_order_id = $3, sub_months = $4, sub_started_at = $5, sub_ends_at = $6
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		userID, role, sub.OrderID, sub.Months, sub.StartedAt, sub.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}

	return expectOne(res, domain.ErrUserNotFound)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}
