package dto

import "encoding/json"

// WebhookEnvelopeDTO is the decoded, pre-verified commerce event envelope.
// Signature verification happens upstream; this layer only checks shape.
type WebhookEnvelopeDTO struct {
	EventID string          `json:"event_id" example:"evt_8FJz1k"`
	Kind    string          `json:"kind"     example:"payment.succeeded"`
	Payload json.RawMessage `json:"payload"`
}

type DeadEventDTO struct {
	ID        int    `json:"id" example:"42"`
	EventID   string `json:"event_id" example:"evt_8FJz1k"`
	Kind      string `json:"kind" example:"payment.refunded"`
	Attempts  int    `json:"attempts" example:"5"`
	LastError string `json:"last_error,omitempty" example:"unknown payment"`
}
