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

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const paymentColumns = `order_id, purpose, user_id, COALESCE(event_id, ''), months, amount_minor,
		currency, status, payment_id, created_at, updated_at`

func scanPayment(s scanner) (*domain.Payment, error) {
	var p domain.Payment
	if err := s.Scan(
		&p.OrderID, &p.Purpose, &p.UserID, &p.EventID, &p.Months, &p.AmountMinor,
		&p.Currency, &p.Status, &p.PaymentID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (order_id, purpose, user_id, event_id, months, amount_minor,
			  currency, status, payment_id, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.OrderID, p.Purpose, p.UserID, p.EventID, p.Months, p.AmountMinor,
		p.Currency, p.Status, p.PaymentID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

func (r *PaymentRepository) FindOpenForEvent(ctx context.Context, userID, eventID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE user_id = $1 AND event_id = $2 AND purpose = $3 AND status = $4
			  ORDER BY created_at DESC
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		userID, eventID, domain.PurposeEventRegistration, domain.PaymentStatusCreated,
	)
	if err != nil {
		return nil, fmt.Errorf("find open payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

// MarkPaid accepts created and expired orders alike: the gateway has already
// captured the money, so a confirmation arriving after the TTL is still honoured.
func (r *PaymentRepository) MarkPaid(ctx context.Context, orderID, paymentID string) (bool, error) {
	query := `UPDATE payments
			  SET status = $2, payment_id = $3, updated_at = $4
			  WHERE order_id = $1 AND status IN ($5, $6)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		orderID, domain.PaymentStatusPaid, paymentID, time.Now().UTC(),
		domain.PaymentStatusCreated, domain.PaymentStatusExpired,
	)
	if err != nil {
		return false, fmt.Errorf("mark paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 1 {
		return true, nil
	}

	// либо уже оплачен, либо такого заказа нет
	if _, err = r.GetByOrderID(ctx, orderID); err != nil {
		return false, err
	}
	return false, nil
}

func (r *PaymentRepository) ExpireCreatedBefore(ctx context.Context, before time.Time) ([]*domain.Payment, error) {
	query := `UPDATE payments
			  SET status = $1, updated_at = $2
			  WHERE status = $3 AND created_at < $4
			  RETURNING ` + paymentColumns
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.PaymentStatusExpired, time.Now().UTC(), domain.PaymentStatusCreated, before,
	)
	if err != nil {
		return nil, fmt.Errorf("expire payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
