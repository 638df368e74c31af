package attribution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/dto"
	"github.com/smilaev/refledger/internal/service/attributionservice"
	"github.com/smilaev/refledger/pkg/utils"
)

type Service interface {
	RecordClick(ctx context.Context, referralCode, fingerprint, ipHash, userAgent string) (*attributionservice.AttributionOutcome, error)
}

type AttributionHandler struct {
	attributionService Service
}

func New(attributionService Service) *AttributionHandler {
	return &AttributionHandler{attributionService: attributionService}
}

// RecordClick godoc
//
//	@Summary		Record a referral link click
//	@Description	Record an attribution click for a referral code and resolve the redirect target. Repeat clicks from the same fingerprint within the attribution window are deduplicated.
//	@Tags			Attribution
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string				true	"Referral code"
//	@Param			request	body		dto.ClickRequestDTO	true	"Click context from the redirect layer"
//	@Success		200		{object}	dto.ClickResponseDTO	"Redirect target"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		404		{object}	utils.Response			"Unknown referral code"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/clicks/{code} [post]
func (h *AttributionHandler) RecordClick(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req dto.ClickRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.attributionService.RecordClick(r.Context(), code, req.Fingerprint, req.IPHash, req.UserAgent)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCode) {
			utils.RespondWithError(w, http.StatusNotFound, "invalid referral link")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ClickResponseDTO{
		Target:       fmt.Sprintf("/join/%d?ref=%s", outcome.Member.CreatorID, outcome.Member.ReferralCode),
		Deduplicated: outcome.Deduplicated,
	})
}
