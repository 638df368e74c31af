package admin

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

const deadLetterLimit = 100

type DeadLetterQueue interface {
	DeadLetters(ctx context.Context, limit int) ([]domain.WebhookEvent, error)
	RequeueDeadLetter(ctx context.Context, id int) (bool, error)
}

type CreatorService interface {
	UpdateTierThresholds(ctx context.Context, creatorID int, t *domain.TierThresholds) error
}

type AdminHandler struct {
	queue          DeadLetterQueue
	creatorService CreatorService
}

func New(queue DeadLetterQueue, creatorService CreatorService) *AdminHandler {
	return &AdminHandler{queue: queue, creatorService: creatorService}
}

// ListDeadLetters godoc
//
//	@Summary		List dead-lettered events
//	@Description	Return webhook events that exhausted their retries or failed validation, for manual inspection and reprocessing.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.DeadEventDTO	"Parked events"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/dead-letters [get]
func (h *AdminHandler) ListDeadLetters(w http.ResponseWriter, r *http.Request) {
	events, err := h.queue.DeadLetters(r.Context(), deadLetterLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DeadEventDTO, len(events))
	for i, e := range events {
		d := dto.DeadEventDTO{
			ID:       e.ID,
			EventID:  e.EventID,
			Kind:     string(e.Kind),
			Attempts: e.Attempts,
		}
		if e.LastError != nil {
			d.LastError = *e.LastError
		}
		response[i] = d
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RequeueDeadLetter godoc
//
//	@Summary		Requeue a dead-lettered event
//	@Description	Resubmit a parked event for processing after the underlying problem was corrected.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int				true	"Queue row id"
//	@Success		200	{string}	string			"Event requeued"
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"No dead event with that id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dead-letters/{id}/requeue [post]
func (h *AdminHandler) RequeueDeadLetter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	requeued, err := h.queue.RequeueDeadLetter(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !requeued {
		utils.RespondWithError(w, http.StatusNotFound, "no dead event with that id")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "event requeued")
}

// UpdateTierThresholds godoc
//
//	@Summary		Update a creator's tier thresholds
//	@Description	Replace the creator's tier configuration. Thresholds must be strictly ascending; invalid configurations are rejected and never written.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Creator id"
//	@Param			request	body		dto.TierThresholdsRequestDTO	true	"Tier thresholds"
//	@Success		200		{string}	string						"Thresholds updated"
//	@Failure		400		{object}	utils.Response				"Invalid body or non-ascending thresholds"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/creators/{id}/tiers [put]
func (h *AdminHandler) UpdateTierThresholds(w http.ResponseWriter, r *http.Request) {
	creatorID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid creator id")
		return
	}

	var req dto.TierThresholdsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	thresholds := &domain.TierThresholds{
		Tier1:       req.Tier1,
		Tier2:       req.Tier2,
		Tier3:       req.Tier3,
		Tier4:       req.Tier4,
		Tier1Reward: req.Tier1Reward,
		Tier2Reward: req.Tier2Reward,
		Tier3Reward: req.Tier3Reward,
		Tier4Reward: req.Tier4Reward,
	}
	if err := h.creatorService.UpdateTierThresholds(r.Context(), creatorID, thresholds); err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "thresholds updated")
}
