package leaderboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/dto"
	"github.com/smilaev/refledger/internal/service/rankservice"
	"github.com/smilaev/refledger/pkg/utils"
)

const defaultLimit = 20

type Service interface {
	GetLeaderboard(ctx context.Context, scope, metric string, creatorID *int, limit int) ([]rankservice.Entry, error)
	GetMemberRank(ctx context.Context, memberID int, scope, metric string) (int, error)
}

type LeaderboardHandler struct {
	rankService Service
}

func New(rankService Service) *LeaderboardHandler {
	return &LeaderboardHandler{rankService: rankService}
}

// GetLeaderboard godoc
//
//	@Summary		Get a leaderboard
//	@Description	Return top members by earnings or referrals, globally or within one creator's community. Served from cache; staleness is bounded by the cache TTL plus the rank recompute interval.
//	@Tags			Leaderboard
//	@Produce		json
//	@Param			scope	query		string	false	"global or community"		default(global)
//	@Param			metric	query		string	false	"earnings or referrals"		default(earnings)
//	@Param			creator	query		int		false	"Creator id, required for community scope"
//	@Param			limit	query		int		false	"Number of entries"			default(20)
//	@Success		200		{array}		dto.LeaderboardEntryDTO	"Leaderboard entries"
//	@Failure		400		{object}	utils.Response			"Unknown scope or metric"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	scope := queryDefault(r, "scope", rankservice.ScopeGlobal)
	metric := queryDefault(r, "metric", domain.RankFieldEarnings)

	var creatorID *int
	if raw := r.URL.Query().Get("creator"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid creator id")
			return
		}
		creatorID = &id
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.rankService.GetLeaderboard(r.Context(), scope, metric, creatorID, limit)
	if err != nil {
		if errors.Is(err, rankservice.ErrUnknownScope) || errors.Is(err, rankservice.ErrUnknownMetric) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LeaderboardEntryDTO{
			MemberID:     e.MemberID,
			ReferralCode: e.ReferralCode,
			Rank:         e.Rank,
			Earnings:     e.Earnings,
			Referred:     e.Referred,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMemberRank godoc
//
//	@Summary		Get a member's live rank
//	@Description	Answer "where do I rank right now" with a direct count query, bypassing the periodically recomputed rank columns.
//	@Tags			Leaderboard
//	@Produce		json
//	@Param			id		path		int		true	"Member id"
//	@Param			scope	query		string	false	"global or community"	default(global)
//	@Param			metric	query		string	false	"earnings or referrals"	default(earnings)
//	@Success		200		{object}	dto.MemberRankResponseDTO	"Current rank"
//	@Failure		400		{object}	utils.Response				"Invalid parameters"
//	@Failure		404		{object}	utils.Response				"Member not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/members/{id}/rank [get]
func (h *LeaderboardHandler) GetMemberRank(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}
	scope := queryDefault(r, "scope", rankservice.ScopeGlobal)
	metric := queryDefault(r, "metric", domain.RankFieldEarnings)

	rank, err := h.rankService.GetMemberRank(r.Context(), memberID, scope, metric)
	if err != nil {
		switch {
		case errors.Is(err, rankservice.ErrMemberMissing):
			utils.RespondWithError(w, http.StatusNotFound, "member not found")
		case errors.Is(err, rankservice.ErrUnknownScope), errors.Is(err, rankservice.ErrUnknownMetric):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MemberRankResponseDTO{
		MemberID: memberID,
		Scope:    scope,
		Metric:   metric,
		Rank:     rank,
	})
}

func queryDefault(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}
