package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// EventStatusPending event accepted, waiting for a worker;
	EventStatusPending string = "pending"
	// EventStatusProcessing event claimed by a worker;
	EventStatusProcessing string = "processing"
	// EventStatusCompleted event handled, duplicates are acked without reprocessing;
	EventStatusCompleted string = "completed"
	// EventStatusRetrying transient failure, scheduled for another attempt;
	EventStatusRetrying string = "retrying"
	// EventStatusDead retry budget exhausted or fatal error, parked for manual review;
	EventStatusDead string = "dead"
)

type EventKind string

const (
	EventPaymentSucceeded    EventKind = "payment.succeeded"
	EventPaymentRefunded     EventKind = "payment.refunded"
	EventMembershipCancelled EventKind = "membership.cancelled"
)

// WebhookEvent is the queued form of an inbound commerce event. The payload
// is decoded once at the boundary into one of the closed Event variants.
type WebhookEvent struct {
	ID          int        `db:"id"`
	EventID     string     `db:"event_id"`
	Kind        EventKind  `db:"kind"`
	PaymentKey  string     `db:"payment_key"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	Attempts    int        `db:"attempts"`
	NextRetryAt *time.Time `db:"next_retry_at"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Event is the closed set of decoded commerce events. Key returns the
// serialization key: events sharing a key must be handled in arrival order.
type Event interface {
	EventKind() EventKind
	Key() string
}

type PaymentSucceededEvent struct {
	PaymentID    string `json:"paymentId"`
	MembershipID string `json:"membershipId"`
	AmountCents  int64  `json:"amountCents"`
	PaymentType  string `json:"paymentType"`
}

func (e PaymentSucceededEvent) EventKind() EventKind { return EventPaymentSucceeded }
func (e PaymentSucceededEvent) Key() string          { return e.PaymentID }

type PaymentRefundedEvent struct {
	RefundID    string `json:"refundId"`
	PaymentID   string `json:"paymentId"`
	AmountCents int64  `json:"amountCents"`
	Reason      string `json:"reason"`
}

func (e PaymentRefundedEvent) EventKind() EventKind { return EventPaymentRefunded }
func (e PaymentRefundedEvent) Key() string          { return e.PaymentID }

type MembershipCancelledEvent struct {
	MembershipID string `json:"membershipId"`
}

func (e MembershipCancelledEvent) EventKind() EventKind { return EventMembershipCancelled }
func (e MembershipCancelledEvent) Key() string          { return e.MembershipID }

// DecodeEvent parses a queued payload into its typed variant.
func DecodeEvent(kind EventKind, payload []byte) (Event, error) {
	switch kind {
	case EventPaymentSucceeded:
		var e PaymentSucceededEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %s payload: %s", ErrMalformedEvent, kind, err)
		}
		if e.PaymentID == "" || e.MembershipID == "" {
			return nil, fmt.Errorf("%w: %s payload missing ids", ErrMalformedEvent, kind)
		}
		return e, nil
	case EventPaymentRefunded:
		var e PaymentRefundedEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %s payload: %s", ErrMalformedEvent, kind, err)
		}
		if e.RefundID == "" || e.PaymentID == "" {
			return nil, fmt.Errorf("%w: %s payload missing ids", ErrMalformedEvent, kind)
		}
		return e, nil
	case EventMembershipCancelled:
		var e MembershipCancelledEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %s payload: %s", ErrMalformedEvent, kind, err)
		}
		if e.MembershipID == "" {
			return nil, fmt.Errorf("%w: %s payload missing membership id", ErrMalformedEvent, kind)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedEvent, kind)
	}
}

// EventKey extracts the serialization key for an inbound event without a
// full decode; used when enqueueing.
func EventKey(kind EventKind, payload []byte) string {
	e, err := DecodeEvent(kind, payload)
	if err != nil {
		return ""
	}
	return e.Key()
}
