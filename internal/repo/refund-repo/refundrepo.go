package refundrepo

import (
	"context"
	"errors"

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

const refundColumns = `id, refund_id, commission_id, refund_amount,
	       member_share_reversed, creator_share_reversed, platform_share_reversed,
	       reason, created_at`

func scanRefund(row pgx.Row) (*domain.Refund, error) {
	var rf domain.Refund
	err := row.Scan(
		&rf.ID, &rf.RefundID, &rf.CommissionID, &rf.RefundAmount,
		&rf.MemberShareReversed, &rf.CreatorShareReversed, &rf.PlatformShareReversed,
		&rf.Reason, &rf.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

func (r *Repository) FindByRefundID(ctx context.Context, refundID string) (*domain.Refund, error) {
	query := `
        SELECT ` + refundColumns + `
        FROM refunds
        WHERE refund_id = $1
    `
	refund, err := scanRefund(r.db.QueryRow(ctx, query, refundID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find refund", zap.Error(err))
		return nil, err
	}
	return refund, nil
}

// InsertOrGet mirrors the commission repo: duplicate refund ids return the
// existing row with created=false instead of an error.
func (r *Repository) InsertOrGet(ctx context.Context, refund *domain.Refund) (*domain.Refund, bool, error) {
	query := `
        INSERT INTO refunds (refund_id, commission_id, refund_amount,
                             member_share_reversed, creator_share_reversed, platform_share_reversed,
                             reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (refund_id) DO NOTHING
        RETURNING ` + refundColumns + `
    `
	inserted, err := scanRefund(r.db.QueryRow(ctx, query,
		refund.RefundID, refund.CommissionID, refund.RefundAmount,
		refund.MemberShareReversed, refund.CreatorShareReversed, refund.PlatformShareReversed,
		refund.Reason, refund.CreatedAt,
	))
	if err == nil {
		return inserted, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't insert refund", zap.Error(err))
		return nil, false, err
	}

	existing, err := r.FindByRefundID(ctx, refund.RefundID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, errors.New("refund vanished after conflict")
	}
	return existing, false, nil
}
