package clickrepo

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
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// FindActive returns the unexpired click for a (member, fingerprint) pair,
// or nil when none exists. Expired rows are never returned; they stay in
// storage for analytics.
func (r *Repository) FindActive(ctx context.Context, memberID int, fingerprint string, now time.Time) (*domain.AttributionClick, error) {
	query := `
        SELECT id, member_id, fingerprint, ip_hash, user_agent, created_at, expires_at
        FROM attribution_clicks
        WHERE member_id = $1 AND fingerprint = $2 AND expires_at > $3
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, memberID, fingerprint, now)
	var click domain.AttributionClick
	err := row.Scan(&click.ID, &click.MemberID, &click.Fingerprint, &click.IPHash, &click.UserAgent, &click.CreatedAt, &click.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find attribution click", zap.Error(err))
		return nil, err
	}
	return &click, nil
}

func (r *Repository) Save(ctx context.Context, click *domain.AttributionClick) error {
	query := `
        INSERT INTO attribution_clicks (member_id, fingerprint, ip_hash, user_agent, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query,
		click.MemberID, click.Fingerprint, click.IPHash, click.UserAgent, click.CreatedAt, click.ExpiresAt,
	)
	if err := row.Scan(&click.ID); err != nil {
		zap.L().Error("can't save attribution click", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountActiveByMember(ctx context.Context, memberID int, now time.Time) (int, error) {
	query := `
        SELECT count(*)
        FROM attribution_clicks
        WHERE member_id = $1 AND expires_at > $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, memberID, now).Scan(&count); err != nil {
		zap.L().Error("can't count active clicks", zap.Error(err))
		return 0, err
	}
	return count, nil
}
