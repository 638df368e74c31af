package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smilaev/refledger/internal/config"
	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/metrics"
	"github.com/smilaev/refledger/internal/service/ledgerservice"
)

type EventRepo interface {
	Enqueue(ctx context.Context, event *domain.WebhookEvent) (bool, error)
	ClaimReady(ctx context.Context, limit int, now time.Time) ([]domain.WebhookEvent, error)
	MarkCompleted(ctx context.Context, id int) error
	MarkRetrying(ctx context.Context, id int, attempts int, nextRetryAt time.Time, lastErr string) error
	MarkDead(ctx context.Context, id int, attempts int, lastErr string) error
	ListDead(ctx context.Context, limit int) ([]domain.WebhookEvent, error)
	Requeue(ctx context.Context, id int) (bool, error)
	ReleaseStale(ctx context.Context, olderThan time.Time) (int, error)
}

type Ledger interface {
	RecordSale(ctx context.Context, paymentID, buyerMembershipID string, saleAmount decimal.Decimal, paymentType string) (*ledgerservice.LedgerOutcome, error)
	ReverseSale(ctx context.Context, refundID, paymentID string, refundAmount decimal.Decimal, reason string) (*ledgerservice.RefundOutcome, error)
}

type Members interface {
	Cancel(ctx context.Context, membershipID string) error
}

type Tiers interface {
	Evaluate(ctx context.Context, memberID, prevReferred, newReferred int) error
}

type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

type WorkerPoolI interface {
	AddTask(ctx context.Context, key string, task Task) error
	Close()
}

// Service pulls ready webhook events off the queue and drives the ledger,
// member lifecycle and tier evaluation. Retry and dead-letter policy lives
// entirely here; the services below only classify their errors.
type Service struct {
	eventRepo   EventRepo
	ledger      Ledger
	members     Members
	tiers       Tiers
	invalidator Invalidator
	pool        WorkerPoolI
	breaker     *Breaker

	pollInterval   time.Duration
	batchSize      int
	retryBaseDelay time.Duration
	retryMaxDelay  time.Duration
	maxAttempts    int

	now func() time.Time
}

func New(cfg *config.Config, eventRepo EventRepo, ledger Ledger, members Members, tiers Tiers, invalidator Invalidator) *Service {
	return &Service{
		eventRepo:      eventRepo,
		ledger:         ledger,
		members:        members,
		tiers:          tiers,
		invalidator:    invalidator,
		pool:           NewKeyedPool(cfg.WorkerLanes),
		breaker:        NewBreaker(cfg.BreakerThreshold, cfg.BreakerCooldown),
		pollInterval:   cfg.PollInterval,
		batchSize:      cfg.PollBatchSize,
		retryBaseDelay: cfg.RetryBaseDelay,
		retryMaxDelay:  cfg.RetryMaxDelay,
		maxAttempts:    cfg.MaxAttempts,
		now:            time.Now,
	}
}

// Accept validates the envelope shape and enqueues the event. Duplicate
// event ids are acknowledged without reprocessing.
func (s *Service) Accept(ctx context.Context, eventID string, kind domain.EventKind, payload []byte) error {
	if _, err := domain.DecodeEvent(kind, payload); err != nil {
		return err
	}

	event := &domain.WebhookEvent{
		EventID:    eventID,
		Kind:       kind,
		PaymentKey: domain.EventKey(kind, payload),
		Payload:    payload,
		Status:     domain.EventStatusPending,
		CreatedAt:  s.now(),
	}
	created, err := s.eventRepo.Enqueue(ctx, event)
	if err != nil {
		return err
	}
	if !created {
		zap.L().Info("duplicate event acknowledged", zap.String("event_id", eventID))
	}
	return nil
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Webhook event processor started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping processor")
			s.pool.Close()
			return
		case <-ticker.C:
			s.processEvents(ctx)
		}
	}
}

func (s *Service) processEvents(ctx context.Context) {
	if !s.breaker.Allow(s.now()) {
		return
	}

	events, err := s.eventRepo.ClaimReady(ctx, s.batchSize, s.now())
	if err != nil {
		zap.L().Error("Failed to claim events for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event
		g.Go(func() error {
			return s.pool.AddTask(ctx, event.PaymentKey, func() error {
				s.handleEvent(ctx, event)
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching events", zap.Error(err))
	}
}

func (s *Service) handleEvent(ctx context.Context, event domain.WebhookEvent) {
	err := s.dispatch(ctx, event)
	if err == nil {
		s.breaker.Success()
		if err := s.eventRepo.MarkCompleted(ctx, event.ID); err == nil {
			metrics.EventsProcessed.WithLabelValues(string(event.Kind), "completed").Inc()
		}
		return
	}

	s.breaker.Failure(s.now())
	s.fail(ctx, event, err)
}

func (s *Service) dispatch(ctx context.Context, event domain.WebhookEvent) error {
	decoded, err := domain.DecodeEvent(event.Kind, event.Payload)
	if err != nil {
		return err
	}

	switch e := decoded.(type) {
	case domain.PaymentSucceededEvent:
		outcome, err := s.ledger.RecordSale(ctx, e.PaymentID, e.MembershipID, centsToAmount(e.AmountCents), e.PaymentType)
		if err != nil {
			return err
		}
		if outcome.AlreadyProcessed {
			return nil
		}
		metrics.CommissionsRecorded.Inc()
		s.invalidateAfterWrite(ctx, outcome.ReferrerMemberID, outcome.CreatorID)
		if outcome.ReferrerMemberID != nil {
			if err := s.tiers.Evaluate(ctx, *outcome.ReferrerMemberID, outcome.PrevReferred, outcome.NewReferred); err != nil {
				// tier state lags until the next evaluation; the ledger
				// write itself is already committed
				zap.L().Warn("tier evaluation failed", zap.Int("member_id", *outcome.ReferrerMemberID), zap.Error(err))
			}
		}
		return nil

	case domain.PaymentRefundedEvent:
		outcome, err := s.ledger.ReverseSale(ctx, e.RefundID, e.PaymentID, centsToAmount(e.AmountCents), e.Reason)
		if err != nil {
			return err
		}
		if outcome.AlreadyProcessed {
			return nil
		}
		metrics.RefundsRecorded.Inc()
		creatorID := 0
		if outcome.Commission != nil {
			creatorID = outcome.Commission.CreatorID
		}
		s.invalidateAfterWrite(ctx, outcome.ReferrerMemberID, creatorID)
		return nil

	case domain.MembershipCancelledEvent:
		return s.members.Cancel(ctx, e.MembershipID)

	default:
		return fmt.Errorf("%w: unhandled kind %s", domain.ErrMalformedEvent, event.Kind)
	}
}

func (s *Service) invalidateAfterWrite(ctx context.Context, memberID *int, creatorID int) {
	keys := []string{"leaderboard:*"}
	if memberID != nil {
		keys = append(keys, fmt.Sprintf("member:%d", *memberID))
	}
	if creatorID != 0 {
		keys = append(keys, fmt.Sprintf("creator:%d", creatorID))
	}
	if err := s.invalidator.Invalidate(ctx, keys...); err != nil {
		zap.L().Warn("cache invalidation failed", zap.Error(err))
	}
}

// fail applies the retry policy: validation errors go straight to the
// dead letter queue, everything else retries with exponential backoff
// until the attempt budget runs out.
func (s *Service) fail(ctx context.Context, event domain.WebhookEvent, cause error) {
	attempts := event.Attempts + 1

	if isFatal(cause) {
		zap.L().Error("event failed fatally, dead-lettering",
			zap.String("event_id", event.EventID), zap.Error(cause))
		if err := s.eventRepo.MarkDead(ctx, event.ID, attempts, cause.Error()); err == nil {
			metrics.EventsProcessed.WithLabelValues(string(event.Kind), "dead").Inc()
		}
		return
	}

	if attempts >= s.maxAttempts {
		zap.L().Error("event exhausted retries, dead-lettering",
			zap.String("event_id", event.EventID), zap.Int("attempts", attempts), zap.Error(cause))
		if err := s.eventRepo.MarkDead(ctx, event.ID, attempts, cause.Error()); err == nil {
			metrics.EventsProcessed.WithLabelValues(string(event.Kind), "dead").Inc()
		}
		return
	}

	delay := s.backoff(attempts)
	zap.L().Warn("event failed, scheduling retry",
		zap.String("event_id", event.EventID), zap.Int("attempt", attempts),
		zap.Duration("retryAfter", delay), zap.Error(cause))
	if err := s.eventRepo.MarkRetrying(ctx, event.ID, attempts, s.now().Add(delay), cause.Error()); err == nil {
		metrics.EventRetries.Inc()
	}
}

// backoff doubles the base delay per attempt, capped at the ceiling.
func (s *Service) backoff(attempt int) time.Duration {
	delay := s.retryBaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= s.retryMaxDelay {
			return s.retryMaxDelay
		}
	}
	if delay > s.retryMaxDelay {
		return s.retryMaxDelay
	}
	return delay
}

// isFatal: shape/validation errors never retry. ErrUnknownPayment and
// ErrUnknownMembership stay retryable: the missing row usually arrives
// with an out-of-order companion event.
func isFatal(err error) bool {
	return errors.Is(err, domain.ErrMalformedEvent) ||
		errors.Is(err, domain.ErrInvalidRefundAmount) ||
		errors.Is(err, domain.ErrConfiguration)
}

func centsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// DeadLetters lists parked events for the admin reprocessing surface.
func (s *Service) DeadLetters(ctx context.Context, limit int) ([]domain.WebhookEvent, error) {
	return s.eventRepo.ListDead(ctx, limit)
}

// Requeue resubmits a dead-lettered event after manual correction.
func (s *Service) RequeueDeadLetter(ctx context.Context, id int) (bool, error) {
	return s.eventRepo.Requeue(ctx, id)
}

// ReleaseStale recovers events claimed by workers that died mid-flight.
func (s *Service) ReleaseStale(ctx context.Context, stuckFor time.Duration) error {
	released, err := s.eventRepo.ReleaseStale(ctx, s.now().Add(-stuckFor))
	if err != nil {
		return err
	}
	if released > 0 {
		zap.L().Warn("released stale processing events", zap.Int("count", released))
	}
	return nil
}
