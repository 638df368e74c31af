package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/dto"
	"github.com/smilaev/refledger/pkg/utils"
)

// EventSink accepts decoded commerce events for asynchronous processing.
type EventSink interface {
	Accept(ctx context.Context, eventID string, kind domain.EventKind, payload []byte) error
}

type WebhookHandler struct {
	sink EventSink
}

func New(sink EventSink) *WebhookHandler {
	return &WebhookHandler{sink: sink}
}

// HandleEvent godoc
//
//	@Summary		Accept a commerce webhook event
//	@Description	Enqueue a pre-verified commerce event (payment.succeeded, payment.refunded, membership.cancelled) for processing. Duplicate event ids are acknowledged without reprocessing.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WebhookEnvelopeDTO	true	"Event envelope"
//	@Success		202		{string}	string					"Event accepted"
//	@Failure		400		{object}	utils.Response			"Malformed envelope or payload"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/webhooks/commerce [post]
func (h *WebhookHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookEnvelopeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EventID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing event id")
		return
	}

	err := h.sink.Accept(r.Context(), req.EventID, domain.EventKind(req.Kind), req.Payload)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedEvent) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, "event accepted")
}
