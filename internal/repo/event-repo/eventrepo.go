package eventrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const eventColumns = `id, event_id, kind, payment_key, payload, status, attempts, next_retry_at, last_error, created_at`

func scanEvent(row pgx.Row) (*domain.WebhookEvent, error) {
	var e domain.WebhookEvent
	err := row.Scan(
		&e.ID, &e.EventID, &e.Kind, &e.PaymentKey, &e.Payload,
		&e.Status, &e.Attempts, &e.NextRetryAt, &e.LastError, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Enqueue accepts an inbound event once per event id. A duplicate delivery
// returns created=false and is acknowledged without reprocessing.
func (r *Repository) Enqueue(ctx context.Context, event *domain.WebhookEvent) (bool, error) {
	query := `
        INSERT INTO webhook_events (event_id, kind, payment_key, payload, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (event_id) DO NOTHING
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query,
		event.EventID, event.Kind, event.PaymentKey, event.Payload, event.Status, event.CreatedAt,
	)
	err := row.Scan(&event.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't enqueue webhook event", zap.Error(err))
		return false, err
	}
	return true, nil
}

// ClaimReady atomically moves up to limit due events to processing and
// returns them. SKIP LOCKED keeps concurrent worker processes from
// claiming the same rows.
func (r *Repository) ClaimReady(ctx context.Context, limit int, now time.Time) ([]domain.WebhookEvent, error) {
	query := `
        UPDATE webhook_events
        SET status = 'processing', claimed_at = $2
        WHERE id IN (
            SELECT id
            FROM webhook_events
            WHERE status = 'pending'
               OR (status = 'retrying' AND next_retry_at <= $2)
            ORDER BY created_at ASC
            LIMIT $1
            FOR UPDATE SKIP LOCKED
        )
        RETURNING ` + eventColumns + `
    `
	rows, err := r.db.Query(ctx, query, limit, now)
	if err != nil {
		zap.L().Error("can't claim webhook events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.WebhookEvent
	for rows.Next() {
		var e domain.WebhookEvent
		err := rows.Scan(
			&e.ID, &e.EventID, &e.Kind, &e.PaymentKey, &e.Payload,
			&e.Status, &e.Attempts, &e.NextRetryAt, &e.LastError, &e.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan webhook event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *Repository) MarkCompleted(ctx context.Context, id int) error {
	query := `
        UPDATE webhook_events
        SET status = 'completed', last_error = NULL
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to mark event completed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkRetrying(ctx context.Context, id int, attempts int, nextRetryAt time.Time, lastErr string) error {
	query := `
        UPDATE webhook_events
        SET status = 'retrying', attempts = $2, next_retry_at = $3, last_error = $4
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, attempts, nextRetryAt, lastErr); err != nil {
		zap.L().Error("failed to mark event retrying", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkDead(ctx context.Context, id int, attempts int, lastErr string) error {
	query := `
        UPDATE webhook_events
        SET status = 'dead', attempts = $2, next_retry_at = NULL, last_error = $3
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, attempts, lastErr); err != nil {
		zap.L().Error("failed to mark event dead", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListDead(ctx context.Context, limit int) ([]domain.WebhookEvent, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM webhook_events
        WHERE status = 'dead'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list dead events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.WebhookEvent
	for rows.Next() {
		var e domain.WebhookEvent
		err := rows.Scan(
			&e.ID, &e.EventID, &e.Kind, &e.PaymentKey, &e.Payload,
			&e.Status, &e.Attempts, &e.NextRetryAt, &e.LastError, &e.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan dead event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// Requeue puts a dead event back on the queue with a fresh retry budget,
// for the admin reprocessing path.
func (r *Repository) Requeue(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE webhook_events
        SET status = 'pending', attempts = 0, next_retry_at = NULL, last_error = NULL
        WHERE id = $1 AND status = 'dead'
        RETURNING id
    `
	var requeuedID int
	err := r.db.QueryRow(ctx, query, id).Scan(&requeuedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("failed to requeue event", zap.Error(err))
		return false, err
	}
	return true, nil
}

// ReleaseStale returns events stuck in processing (e.g. a worker died
// mid-flight) to pending so another worker can pick them up.
func (r *Repository) ReleaseStale(ctx context.Context, olderThan time.Time) (int, error) {
	query := `
        UPDATE webhook_events
        SET status = 'pending', claimed_at = NULL
        WHERE status = 'processing' AND claimed_at < $1
    `
	tag, err := r.db.Exec(ctx, query, olderThan)
	if err != nil {
		zap.L().Error("failed to release stale events", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
