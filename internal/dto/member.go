package dto

import "github.com/shopspring/decimal"

type RegisterMemberRequestDTO struct {
	CreatorID    int     `json:"creator_id" example:"7"`
	MembershipID string  `json:"membership_id" example:"mem_Xc21aP"`
	ReferredBy   *string `json:"referred_by,omitempty" example:"7992739875"`
}

type MemberResponseDTO struct {
	ID           int    `json:"id" example:"12"`
	CreatorID    int    `json:"creator_id" example:"7"`
	MembershipID string `json:"membership_id" example:"mem_Xc21aP"`
	ReferralCode string `json:"referral_code" example:"7992739875"`
	Status       string `json:"status" example:"active"`
}

type MemberStatsResponseDTO struct {
	MemberID         int             `json:"member_id" example:"12"`
	LifetimeEarnings decimal.Decimal `json:"lifetime_earnings" example:"125.5"`
	MonthlyEarnings  decimal.Decimal `json:"monthly_earnings" example:"42"`
	TotalReferred    int             `json:"total_referred" example:"34"`
	MonthlyReferred  int             `json:"monthly_referred" example:"5"`
	EarningsRank     int             `json:"earnings_rank" example:"3"`
	ReferralsRank    int             `json:"referrals_rank" example:"8"`
	CommunityRank    int             `json:"community_rank" example:"1"`
	Tier             string          `json:"tier" example:"Silver"`
	LastMilestone    int             `json:"last_milestone" example:"25"`
}

type TierThresholdsRequestDTO struct {
	Tier1       int    `json:"tier1" example:"5"`
	Tier2       int    `json:"tier2" example:"15"`
	Tier3       int    `json:"tier3" example:"50"`
	Tier4       int    `json:"tier4" example:"150"`
	Tier1Reward string `json:"tier1_reward" example:"Shoutout"`
	Tier2Reward string `json:"tier2_reward" example:"Free month"`
	Tier3Reward string `json:"tier3_reward" example:"Merch pack"`
	Tier4Reward string `json:"tier4_reward" example:"Revenue bonus"`
}
