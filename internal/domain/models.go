package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MemberStatusActive membership is active;
	MemberStatusActive string = "active"
	// MemberStatusCancelled membership was cancelled on the commerce platform;
	MemberStatusCancelled string = "cancelled"
)

const (
	// CommissionStatusPending commission recorded, payment not confirmed yet;
	CommissionStatusPending string = "pending"
	// CommissionStatusPaid payment confirmed, shares credited;
	CommissionStatusPaid string = "paid"
	// CommissionStatusFailed payment failed, nothing credited;
	CommissionStatusFailed string = "failed"
	// CommissionStatusRefunded the full sale amount was reversed;
	CommissionStatusRefunded string = "refunded"
	// CommissionStatusPartialRefund part of the sale amount was reversed;
	CommissionStatusPartialRefund string = "partial_refund"
)

type Member struct {
	ID               int             `db:"id"`
	CreatorID        int             `db:"creator_id"`
	MembershipID     string          `db:"membership_id"`
	ReferralCode     string          `db:"referral_code"`
	ReferredBy       *string         `db:"referred_by"`
	Status           string          `db:"status"`
	LifetimeEarnings decimal.Decimal `db:"lifetime_earnings"`
	MonthlyEarnings  decimal.Decimal `db:"monthly_earnings"`
	TotalReferred    int             `db:"total_referred"`
	MonthlyReferred  int             `db:"monthly_referred"`
	EarningsRank     int             `db:"earnings_rank"`
	ReferralsRank    int             `db:"referrals_rank"`
	CommunityRank    int             `db:"community_rank"`
	Tier             string          `db:"tier"`
	LastMilestone    int             `db:"last_milestone"`
	FirstPaidAt      *time.Time      `db:"first_paid_at"`
	LastActiveAt     *time.Time      `db:"last_active_at"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Creator struct {
	ID             int             `db:"id"`
	Name           string          `db:"name"`
	TotalRevenue   decimal.Decimal `db:"total_revenue"`
	MonthlyRevenue decimal.Decimal `db:"monthly_revenue"`
	TierThresholds TierThresholds  `db:"-"`
	CreatedAt      time.Time       `db:"created_at"`
}

// TierThresholds must be strictly ascending (tier1 < tier2 < tier3 < tier4).
// Validated when the configuration is written, never on read.
type TierThresholds struct {
	Tier1       int    `db:"tier1_threshold"`
	Tier2       int    `db:"tier2_threshold"`
	Tier3       int    `db:"tier3_threshold"`
	Tier4       int    `db:"tier4_threshold"`
	Tier1Reward string `db:"tier1_reward"`
	Tier2Reward string `db:"tier2_reward"`
	Tier3Reward string `db:"tier3_reward"`
	Tier4Reward string `db:"tier4_reward"`
}

type AttributionClick struct {
	ID          int       `db:"id"`
	MemberID    int       `db:"member_id"`
	Fingerprint string    `db:"fingerprint"`
	IPHash      string    `db:"ip_hash"`
	UserAgent   string    `db:"user_agent"`
	CreatedAt   time.Time `db:"created_at"`
	ExpiresAt   time.Time `db:"expires_at"`
}

// Expired reports whether the click is outside its attribution window.
// Expired clicks stay in storage; they are only logically dead.
func (c *AttributionClick) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

type Commission struct {
	ID               int             `db:"id"`
	PaymentID        string          `db:"payment_id"`
	CreatorID        int             `db:"creator_id"`
	BuyerMemberID    int             `db:"buyer_member_id"`
	ReferrerMemberID *int            `db:"referrer_member_id"`
	SaleAmount       decimal.Decimal `db:"sale_amount"`
	MemberShare      decimal.Decimal `db:"member_share"`
	CreatorShare     decimal.Decimal `db:"creator_share"`
	PlatformShare    decimal.Decimal `db:"platform_share"`
	PaymentType      string          `db:"payment_type"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Refund struct {
	ID                    int             `db:"id"`
	RefundID              string          `db:"refund_id"`
	CommissionID          int             `db:"commission_id"`
	RefundAmount          decimal.Decimal `db:"refund_amount"`
	MemberShareReversed   decimal.Decimal `db:"member_share_reversed"`
	CreatorShareReversed  decimal.Decimal `db:"creator_share_reversed"`
	PlatformShareReversed decimal.Decimal `db:"platform_share_reversed"`
	Reason                string          `db:"reason"`
	CreatedAt             time.Time       `db:"created_at"`
}
