package commissionrepo

import (
	"context"
	"errors"

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

const commissionColumns = `id, payment_id, creator_id, buyer_member_id, referrer_member_id,
	       sale_amount, member_share, creator_share, platform_share,
	       payment_type, status, created_at`

func scanCommission(row pgx.Row) (*domain.Commission, error) {
	var c domain.Commission
	err := row.Scan(
		&c.ID, &c.PaymentID, &c.CreatorID, &c.BuyerMemberID, &c.ReferrerMemberID,
		&c.SaleAmount, &c.MemberShare, &c.CreatorShare, &c.PlatformShare,
		&c.PaymentType, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByPaymentID(ctx context.Context, paymentID string) (*domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE payment_id = $1
    `
	commission, err := scanCommission(r.db.QueryRow(ctx, query, paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find commission", zap.Error(err))
		return nil, err
	}
	return commission, nil
}

// InsertOrGet makes the payment_id idempotency explicit: the insert is
// attempted with ON CONFLICT DO NOTHING, and on conflict the existing row
// is returned with created=false. The unique constraint serializes
// concurrent inserts for the same payment id.
func (r *Repository) InsertOrGet(ctx context.Context, commission *domain.Commission) (*domain.Commission, bool, error) {
	query := `
        INSERT INTO commissions (payment_id, creator_id, buyer_member_id, referrer_member_id,
                                 sale_amount, member_share, creator_share, platform_share,
                                 payment_type, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (payment_id) DO NOTHING
        RETURNING ` + commissionColumns + `
    `
	inserted, err := scanCommission(r.db.QueryRow(ctx, query,
		commission.PaymentID, commission.CreatorID, commission.BuyerMemberID, commission.ReferrerMemberID,
		commission.SaleAmount, commission.MemberShare, commission.CreatorShare, commission.PlatformShare,
		commission.PaymentType, commission.Status, commission.CreatedAt,
	))
	if err == nil {
		return inserted, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't insert commission", zap.Error(err))
		return nil, false, err
	}

	existing, err := r.FindByPaymentID(ctx, commission.PaymentID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, errors.New("commission vanished after conflict")
	}
	return existing, false, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE commissions
        SET status = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, id)
		if err != nil {
			zap.L().Error("failed to update commission status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByReferrer(ctx context.Context, memberID int, limit int) ([]domain.Commission, error) {
	query := `
        SELECT ` + commissionColumns + `
        FROM commissions
        WHERE referrer_member_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, memberID, limit)
	if err != nil {
		zap.L().Error("can't list commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.Commission
	for rows.Next() {
		var c domain.Commission
		err := rows.Scan(
			&c.ID, &c.PaymentID, &c.CreatorID, &c.BuyerMemberID, &c.ReferrerMemberID,
			&c.SaleAmount, &c.MemberShare, &c.CreatorShare, &c.PlatformShare,
			&c.PaymentType, &c.Status, &c.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan commission row", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, c)
	}
	return commissions, nil
}
