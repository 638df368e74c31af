package dto

import "github.com/shopspring/decimal"

type LeaderboardEntryDTO struct {
	MemberID     int             `json:"member_id" example:"12"`
	ReferralCode string          `json:"referral_code" example:"7992739875"`
	Rank         int             `json:"rank" example:"1"`
	Earnings     decimal.Decimal `json:"earnings" example:"125.5"`
	Referred     int             `json:"referred" example:"34"`
}

type MemberRankResponseDTO struct {
	MemberID int    `json:"member_id" example:"12"`
	Scope    string `json:"scope" example:"global"`
	Metric   string `json:"metric" example:"earnings"`
	Rank     int    `json:"rank" example:"3"`
}
