package domain

import "errors"

// Error taxonomy shared by the ledger, attribution store and the event
// processor. The processor alone maps these onto retry policy; lower
// layers only classify, they never retry themselves.
var (
	// ErrUnknownCode referral code does not resolve to a member.
	ErrUnknownCode = errors.New("unknown referral code")
	// ErrUnknownPayment refund references a payment that was never recorded.
	ErrUnknownPayment = errors.New("unknown payment")
	// ErrUnknownMembership payment references a membership with no member
	// record yet; usually an event-ordering race with signup/import.
	ErrUnknownMembership = errors.New("unknown membership")
	// ErrInvalidRefundAmount refund exceeds the original sale amount.
	ErrInvalidRefundAmount = errors.New("refund amount exceeds sale amount")
	// ErrDuplicateEvent duplicate delivery; handled as success-no-op.
	ErrDuplicateEvent = errors.New("duplicate event")
	// ErrTransientStore datastore hiccup worth retrying (lock timeout, dropped connection).
	ErrTransientStore = errors.New("transient store error")
	// ErrConfiguration invalid configuration write (e.g. non-ascending tier thresholds).
	ErrConfiguration = errors.New("invalid configuration")
	// ErrMalformedEvent event payload failed shape validation; never retried.
	ErrMalformedEvent = errors.New("malformed event")
)
