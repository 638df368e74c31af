package creatorrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Creator, error) {
	query := `
        SELECT id, name, total_revenue, monthly_revenue,
               tier1_threshold, tier2_threshold, tier3_threshold, tier4_threshold,
               tier1_reward, tier2_reward, tier3_reward, tier4_reward,
               created_at
        FROM creators
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var c domain.Creator
	err := row.Scan(
		&c.ID, &c.Name, &c.TotalRevenue, &c.MonthlyRevenue,
		&c.TierThresholds.Tier1, &c.TierThresholds.Tier2, &c.TierThresholds.Tier3, &c.TierThresholds.Tier4,
		&c.TierThresholds.Tier1Reward, &c.TierThresholds.Tier2Reward, &c.TierThresholds.Tier3Reward, &c.TierThresholds.Tier4Reward,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find creator", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// AddRevenue shifts the creator's aggregate revenue counters by delta;
// negative deltas reverse refunded revenue.
func (r *Repository) AddRevenue(ctx context.Context, creatorID int, delta decimal.Decimal) error {
	query := `
        UPDATE creators
        SET total_revenue = total_revenue + $1,
            monthly_revenue = monthly_revenue + $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, delta, creatorID)
		if err != nil {
			zap.L().Error("failed to update creator revenue", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateTierThresholds(ctx context.Context, creatorID int, t *domain.TierThresholds) error {
	query := `
        UPDATE creators
        SET tier1_threshold = $1, tier2_threshold = $2, tier3_threshold = $3, tier4_threshold = $4,
            tier1_reward = $5, tier2_reward = $6, tier3_reward = $7, tier4_reward = $8
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			t.Tier1, t.Tier2, t.Tier3, t.Tier4,
			t.Tier1Reward, t.Tier2Reward, t.Tier3Reward, t.Tier4Reward,
			creatorID,
		)
		if err != nil {
			zap.L().Error("failed to update tier thresholds", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM creators
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list creators", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan creator id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
