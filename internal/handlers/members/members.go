package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/dto"
	"github.com/smilaev/refledger/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, creatorID int, membershipID string, referredBy *string) (*domain.Member, error)
	GetStats(ctx context.Context, id int) (*domain.Member, error)
}

type MembersHandler struct {
	memberService Service
}

func New(memberService Service) *MembersHandler {
	return &MembersHandler{memberService: memberService}
}

// Register godoc
//
//	@Summary		Register a member
//	@Description	Create a member record at signup/import time and issue its referral code. Registering an existing membership id returns the existing record.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterMemberRequestDTO	true	"Member details"
//	@Success		200		{object}	dto.MemberResponseDTO			"Member record"
//	@Failure		400		{object}	utils.Response					"Invalid body or unknown referrer code"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/members [post]
func (h *MembersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CreatorID <= 0 || req.MembershipID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "creator_id and membership_id are required")
		return
	}

	member, err := h.memberService.Register(r.Context(), req.CreatorID, req.MembershipID, req.ReferredBy)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCode) {
			utils.RespondWithError(w, http.StatusBadRequest, "unknown referrer code")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MemberResponseDTO{
		ID:           member.ID,
		CreatorID:    member.CreatorID,
		MembershipID: member.MembershipID,
		ReferralCode: member.ReferralCode,
		Status:       member.Status,
	})
}

// GetStats godoc
//
//	@Summary		Get member stats
//	@Description	Return a member's earnings, referral counters, cached ranks, tier and last crossed milestone. Served through the cache; invalidated after every ledger write for the member.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		int	true	"Member id"
//	@Success		200	{object}	dto.MemberStatsResponseDTO	"Member stats"
//	@Failure		400	{object}	utils.Response				"Invalid member id"
//	@Failure		404	{object}	utils.Response				"Member not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/members/{id}/stats [get]
func (h *MembersHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	member, err := h.memberService.GetStats(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if member == nil {
		utils.RespondWithError(w, http.StatusNotFound, "member not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MemberStatsResponseDTO{
		MemberID:         member.ID,
		LifetimeEarnings: member.LifetimeEarnings,
		MonthlyEarnings:  member.MonthlyEarnings,
		TotalReferred:    member.TotalReferred,
		MonthlyReferred:  member.MonthlyReferred,
		EarningsRank:     member.EarningsRank,
		ReferralsRank:    member.ReferralsRank,
		CommunityRank:    member.CommunityRank,
		Tier:             member.Tier,
		LastMilestone:    member.LastMilestone,
	})
}
