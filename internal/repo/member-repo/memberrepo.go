package memberrepo

import (
	"context"
	"errors"
	"time"

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

const memberColumns = `id, creator_id, membership_id, referral_code, referred_by, status,
	       lifetime_earnings, monthly_earnings, total_referred, monthly_referred,
	       earnings_rank, referrals_rank, community_rank, tier, last_milestone,
	       first_paid_at, last_active_at, created_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.CreatorID, &m.MembershipID, &m.ReferralCode, &m.ReferredBy, &m.Status,
		&m.LifetimeEarnings, &m.MonthlyEarnings, &m.TotalReferred, &m.MonthlyReferred,
		&m.EarningsRank, &m.ReferralsRank, &m.CommunityRank, &m.Tier, &m.LastMilestone,
		&m.FirstPaidAt, &m.LastActiveAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) FindByMembershipID(ctx context.Context, membershipID string) (*domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE membership_id = $1
    `
	member, err := scanMember(r.db.QueryRow(ctx, query, membershipID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member by membership id", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE referral_code = $1
    `
	member, err := scanMember(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member by referral code", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE id = $1
    `
	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member by id", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) Save(ctx context.Context, member *domain.Member) error {
	query := `
        INSERT INTO members (creator_id, membership_id, referral_code, referred_by, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			member.CreatorID, member.MembershipID, member.ReferralCode,
			member.ReferredBy, member.Status, member.CreatedAt,
		)
		if err := row.Scan(&member.ID); err != nil {
			zap.L().Error("can't save member", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// AddEarnings shifts both earnings counters by delta. Negative deltas are
// allowed and the balance may go below zero (refund after payout).
func (r *Repository) AddEarnings(ctx context.Context, memberID int, delta decimal.Decimal) error {
	query := `
        UPDATE members
        SET lifetime_earnings = lifetime_earnings + $1,
            monthly_earnings = monthly_earnings + $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, delta, memberID)
		if err != nil {
			zap.L().Error("failed to update member earnings", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) IncrementReferred(ctx context.Context, memberID int) error {
	query := `
        UPDATE members
        SET total_referred = total_referred + 1,
            monthly_referred = monthly_referred + 1
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, memberID)
		if err != nil {
			zap.L().Error("failed to increment referred counters", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) MarkFirstPaid(ctx context.Context, memberID int, at time.Time) error {
	query := `
        UPDATE members
        SET first_paid_at = $1
        WHERE id = $2 AND first_paid_at IS NULL
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, at, memberID)
		if err != nil {
			zap.L().Error("failed to mark first paid sale", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, membershipID string, status string) error {
	query := `
        UPDATE members
        SET status = $1
        WHERE membership_id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, membershipID)
		if err != nil {
			zap.L().Error("failed to update member status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateTierState(ctx context.Context, memberID int, tier string, lastMilestone int) error {
	query := `
        UPDATE members
        SET tier = $1, last_milestone = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, tier, lastMilestone, memberID)
		if err != nil {
			zap.L().Error("failed to update tier state", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// TouchLastActive is best-effort: callers fire it outside any transaction
// and only log failures.
func (r *Repository) TouchLastActive(ctx context.Context, memberID int, at time.Time) error {
	query := `
        UPDATE members
        SET last_active_at = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, at, memberID)
	if err != nil {
		zap.L().Error("failed to touch last active", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListRankRows(ctx context.Context, creatorID *int) ([]domain.RankRow, error) {
	query := `
        SELECT id, lifetime_earnings, total_referred, created_at
        FROM members
    `
	var rows pgx.Rows
	var err error
	if creatorID != nil {
		rows, err = r.db.Query(ctx, query+` WHERE creator_id = $1`, *creatorID)
	} else {
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		zap.L().Error("can't list rank rows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.RankRow
	for rows.Next() {
		var row domain.RankRow
		if err := rows.Scan(&row.MemberID, &row.Earnings, &row.Referred, &row.CreatedAt); err != nil {
			zap.L().Error("can't scan rank row", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}
	return result, nil
}

// rank column names are fixed here; never interpolate caller input.
var rankColumns = map[string]string{
	domain.RankFieldEarnings:  "earnings_rank",
	domain.RankFieldReferrals: "referrals_rank",
	domain.RankFieldCommunity: "community_rank",
}

func (r *Repository) UpdateRanks(ctx context.Context, field string, assignments []domain.RankAssignment) error {
	column, ok := rankColumns[field]
	if !ok {
		return errors.New("unknown rank field: " + field)
	}

	ids := make([]int, len(assignments))
	ranks := make([]int, len(assignments))
	for i, a := range assignments {
		ids[i] = a.MemberID
		ranks[i] = a.Rank
	}

	query := `
        UPDATE members m
        SET ` + column + ` = r.rank
        FROM (SELECT unnest($1::int[]) AS id, unnest($2::int[]) AS rank) r
        WHERE m.id = r.id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, ids, ranks)
		if err != nil {
			zap.L().Error("failed to update ranks", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// CountAheadByEarnings returns how many members outrank the given metric
// pair, for on-demand rank reads that bypass the cached rank columns.
func (r *Repository) CountAheadByEarnings(ctx context.Context, earnings decimal.Decimal, createdAt time.Time) (int, error) {
	query := `
        SELECT count(*)
        FROM members
        WHERE lifetime_earnings > $1
           OR (lifetime_earnings = $1 AND created_at < $2)
    `
	var count int
	if err := r.db.QueryRow(ctx, query, earnings, createdAt).Scan(&count); err != nil {
		zap.L().Error("can't count earnings rank", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountAheadByReferrals(ctx context.Context, referred int, createdAt time.Time) (int, error) {
	query := `
        SELECT count(*)
        FROM members
        WHERE total_referred > $1
           OR (total_referred = $1 AND created_at < $2)
    `
	var count int
	if err := r.db.QueryRow(ctx, query, referred, createdAt).Scan(&count); err != nil {
		zap.L().Error("can't count referrals rank", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountAheadInCommunity(ctx context.Context, creatorID int, earnings decimal.Decimal, createdAt time.Time) (int, error) {
	query := `
        SELECT count(*)
        FROM members
        WHERE creator_id = $1
          AND (lifetime_earnings > $2
           OR (lifetime_earnings = $2 AND created_at < $3))
    `
	var count int
	if err := r.db.QueryRow(ctx, query, creatorID, earnings, createdAt).Scan(&count); err != nil {
		zap.L().Error("can't count community rank", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListTop(ctx context.Context, field string, creatorID *int, limit int) ([]domain.Member, error) {
	var orderBy string
	switch field {
	case domain.RankFieldReferrals:
		orderBy = "total_referred DESC, created_at ASC"
	default:
		orderBy = "lifetime_earnings DESC, created_at ASC"
	}

	query := `
        SELECT ` + memberColumns + `
        FROM members
    `
	var rows pgx.Rows
	var err error
	if creatorID != nil {
		rows, err = r.db.Query(ctx, query+` WHERE creator_id = $1 ORDER BY `+orderBy+` LIMIT $2`, *creatorID, limit)
	} else {
		rows, err = r.db.Query(ctx, query+` ORDER BY `+orderBy+` LIMIT $1`, limit)
	}
	if err != nil {
		zap.L().Error("can't list top members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		err := rows.Scan(
			&m.ID, &m.CreatorID, &m.MembershipID, &m.ReferralCode, &m.ReferredBy, &m.Status,
			&m.LifetimeEarnings, &m.MonthlyEarnings, &m.TotalReferred, &m.MonthlyReferred,
			&m.EarningsRank, &m.ReferralsRank, &m.CommunityRank, &m.Tier, &m.LastMilestone,
			&m.FirstPaidAt, &m.LastActiveAt, &m.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}
