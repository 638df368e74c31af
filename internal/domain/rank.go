package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// RankFieldEarnings global ranking by lifetime earnings;
	RankFieldEarnings string = "earnings"
	// RankFieldReferrals global ranking by total referred count;
	RankFieldReferrals string = "referrals"
	// RankFieldCommunity per-creator ranking by lifetime earnings;
	RankFieldCommunity string = "community"
)

// RankRow is the metric slice of a member used by rank recomputation.
type RankRow struct {
	MemberID  int             `db:"id"`
	Earnings  decimal.Decimal `db:"lifetime_earnings"`
	Referred  int             `db:"total_referred"`
	CreatedAt time.Time       `db:"created_at"`
}

// RankAssignment is a computed rank ready to be persisted onto the
// member's cached rank column.
type RankAssignment struct {
	MemberID int
	Rank     int
}
