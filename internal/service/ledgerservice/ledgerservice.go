package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/pg"
)

type MemberRepo interface {
	FindByMembershipID(ctx context.Context, membershipID string) (*domain.Member, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Member, error)
	AddEarnings(ctx context.Context, memberID int, delta decimal.Decimal) error
	IncrementReferred(ctx context.Context, memberID int) error
	MarkFirstPaid(ctx context.Context, memberID int, at time.Time) error
}

type CreatorRepo interface {
	AddRevenue(ctx context.Context, creatorID int, delta decimal.Decimal) error
}

type CommissionRepo interface {
	FindByPaymentID(ctx context.Context, paymentID string) (*domain.Commission, error)
	InsertOrGet(ctx context.Context, commission *domain.Commission) (*domain.Commission, bool, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type RefundRepo interface {
	FindByRefundID(ctx context.Context, refundID string) (*domain.Refund, error)
	InsertOrGet(ctx context.Context, refund *domain.Refund) (*domain.Refund, bool, error)
}

type Service struct {
	memberRepo     MemberRepo
	creatorRepo    CreatorRepo
	commissionRepo CommissionRepo
	refundRepo     RefundRepo
	txManager      pg.TXManager
}

func New(memberRepo MemberRepo, creatorRepo CreatorRepo, commissionRepo CommissionRepo, refundRepo RefundRepo, txManager pg.TXManager) *Service {
	return &Service{
		memberRepo:     memberRepo,
		creatorRepo:    creatorRepo,
		commissionRepo: commissionRepo,
		refundRepo:     refundRepo,
		txManager:      txManager,
	}
}

// Commission split: 10% to the referring member, 70% to the creator, 20%
// to the platform. Fixed configuration constants, never recomputed after
// the commission row is written.
var (
	memberRate   = decimal.RequireFromString("0.10")
	platformRate = decimal.RequireFromString("0.20")
)

// fullRefundEpsilon: a refund within this distance of the sale amount
// counts as a full refund.
var fullRefundEpsilon = decimal.RequireFromString("0.000001")

// errDuplicateRace forces a rollback when another transaction committed
// the same refund id between our read and our insert.
var errDuplicateRace = errors.New("duplicate refund committed concurrently")

// LedgerOutcome reports what a RecordSale call did, so the caller can
// drive tier evaluation and cache invalidation without re-reading state.
type LedgerOutcome struct {
	Commission       *domain.Commission
	AlreadyProcessed bool
	ReferrerMemberID *int
	CreatorID        int
	PrevReferred     int
	NewReferred      int
	FirstPaidSale    bool
}

type RefundOutcome struct {
	Refund           *domain.Refund
	Commission       *domain.Commission
	AlreadyProcessed bool
	ReferrerMemberID *int
}

// splitSale divides amount into member/creator/platform shares. The
// creator share absorbs the rounding remainder, so the three always sum
// exactly to amount. An organic sale (no referrer) moves the member share
// into the creator share.
func splitSale(amount decimal.Decimal, organic bool) (member, creator, platform decimal.Decimal) {
	member = amount.Mul(memberRate)
	platform = amount.Mul(platformRate)
	if organic {
		member = decimal.Zero
	}
	creator = amount.Sub(member).Sub(platform)
	return member, creator, platform
}

// splitRefund scales the original shares by refundAmount/saleAmount. The
// creator share again absorbs the remainder. A full refund reverses the
// original shares exactly instead of going through the ratio.
func splitRefund(commission *domain.Commission, refundAmount decimal.Decimal) (member, creator, platform decimal.Decimal) {
	if commission.SaleAmount.Sub(refundAmount).Abs().Cmp(fullRefundEpsilon) <= 0 {
		return commission.MemberShare, commission.CreatorShare, commission.PlatformShare
	}
	ratio := refundAmount.Div(commission.SaleAmount)
	member = commission.MemberShare.Mul(ratio).Round(6)
	platform = commission.PlatformShare.Mul(ratio).Round(6)
	creator = refundAmount.Sub(member).Sub(platform)
	return member, creator, platform
}

// RecordSale attributes a sale, writes the commission row and credits the
// counters, all inside one transaction. Safe to call repeatedly for the
// same payment id: duplicates return the stored result unchanged.
func (s *Service) RecordSale(ctx context.Context, paymentID, buyerMembershipID string, saleAmount decimal.Decimal, paymentType string) (*LedgerOutcome, error) {
	outcome := &LedgerOutcome{}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		buyer, err := s.memberRepo.FindByMembershipID(ctx, buyerMembershipID)
		if err != nil {
			return err
		}
		if buyer == nil {
			return fmt.Errorf("%w: membership %s", domain.ErrUnknownMembership, buyerMembershipID)
		}

		referrer, err := s.resolveReferrer(ctx, buyer)
		if err != nil {
			return err
		}

		memberShare, creatorShare, platformShare := splitSale(saleAmount, referrer == nil)

		commission := &domain.Commission{
			PaymentID:     paymentID,
			CreatorID:     buyer.CreatorID,
			BuyerMemberID: buyer.ID,
			SaleAmount:    saleAmount,
			MemberShare:   memberShare,
			CreatorShare:  creatorShare,
			PlatformShare: platformShare,
			PaymentType:   paymentType,
			Status:        domain.CommissionStatusPaid,
			CreatedAt:     time.Now(),
		}
		if referrer != nil {
			commission.ReferrerMemberID = &referrer.ID
		}

		stored, created, err := s.commissionRepo.InsertOrGet(ctx, commission)
		if err != nil {
			return err
		}
		outcome.Commission = stored
		outcome.ReferrerMemberID = stored.ReferrerMemberID
		outcome.CreatorID = stored.CreatorID
		if !created {
			outcome.AlreadyProcessed = true
			zap.L().Info("payment already recorded", zap.String("payment_id", paymentID))
			return nil
		}

		if referrer != nil {
			if err := s.memberRepo.AddEarnings(ctx, referrer.ID, memberShare); err != nil {
				return err
			}
			outcome.PrevReferred = referrer.TotalReferred
			outcome.NewReferred = referrer.TotalReferred
			// the referred counter moves only on the buyer's first paid
			// sale, not on every recurring payment
			if buyer.FirstPaidAt == nil {
				if err := s.memberRepo.IncrementReferred(ctx, referrer.ID); err != nil {
					return err
				}
				outcome.NewReferred = referrer.TotalReferred + 1
				outcome.FirstPaidSale = true
			}
		}

		if buyer.FirstPaidAt == nil {
			if err := s.memberRepo.MarkFirstPaid(ctx, buyer.ID, time.Now()); err != nil {
				return err
			}
		}

		if err := s.creatorRepo.AddRevenue(ctx, buyer.CreatorID, creatorShare); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		zap.L().Error("failed to record sale", zap.String("payment_id", paymentID), zap.Error(err))
		return nil, err
	}
	return outcome, nil
}

// resolveReferrer follows the buyer's signup-time referral linkage. A
// dangling referredBy code (referrer deleted) makes the sale organic.
func (s *Service) resolveReferrer(ctx context.Context, buyer *domain.Member) (*domain.Member, error) {
	if buyer.ReferredBy == nil || *buyer.ReferredBy == "" {
		return nil, nil
	}
	referrer, err := s.memberRepo.FindByReferralCode(ctx, *buyer.ReferredBy)
	if err != nil {
		return nil, err
	}
	if referrer == nil {
		zap.L().Warn("dangling referral pointer, treating sale as organic",
			zap.String("membership_id", buyer.MembershipID), zap.String("referred_by", *buyer.ReferredBy))
		return nil, nil
	}
	if referrer.ID == buyer.ID {
		return nil, nil
	}
	return referrer, nil
}

// ReverseSale reverses the split of a recorded sale, proportionally for
// partial refunds. Member earnings are allowed to go negative: that is the
// accepted "owes back" signal, not an error.
func (s *Service) ReverseSale(ctx context.Context, refundID, paymentID string, refundAmount decimal.Decimal, reason string) (*RefundOutcome, error) {
	outcome := &RefundOutcome{}

	existing, err := s.refundRepo.FindByRefundID(ctx, refundID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		commission, err := s.commissionRepo.FindByPaymentID(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		outcome.Refund = existing
		outcome.Commission = commission
		outcome.AlreadyProcessed = true
		if commission != nil {
			outcome.ReferrerMemberID = commission.ReferrerMemberID
		}
		zap.L().Info("refund already recorded", zap.String("refund_id", refundID))
		return outcome, nil
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		commission, err := s.commissionRepo.FindByPaymentID(ctx, paymentID)
		if err != nil {
			return err
		}
		if commission == nil {
			return fmt.Errorf("%w: payment %s", domain.ErrUnknownPayment, paymentID)
		}
		outcome.Commission = commission
		outcome.ReferrerMemberID = commission.ReferrerMemberID

		if refundAmount.Sign() <= 0 || refundAmount.Cmp(commission.SaleAmount) > 0 {
			return fmt.Errorf("%w: refund %s exceeds sale %s for payment %s",
				domain.ErrInvalidRefundAmount, refundAmount, commission.SaleAmount, paymentID)
		}

		memberRev, creatorRev, platformRev := splitRefund(commission, refundAmount)

		if commission.ReferrerMemberID != nil {
			if err := s.memberRepo.AddEarnings(ctx, *commission.ReferrerMemberID, memberRev.Neg()); err != nil {
				return err
			}
		}
		if err := s.creatorRepo.AddRevenue(ctx, commission.CreatorID, creatorRev.Neg()); err != nil {
			return err
		}

		status := domain.CommissionStatusPartialRefund
		if commission.SaleAmount.Sub(refundAmount).Abs().Cmp(fullRefundEpsilon) <= 0 {
			status = domain.CommissionStatusRefunded
		}
		if err := s.commissionRepo.UpdateStatus(ctx, commission.ID, status); err != nil {
			return err
		}
		commission.Status = status

		refund := &domain.Refund{
			RefundID:              refundID,
			CommissionID:          commission.ID,
			RefundAmount:          refundAmount,
			MemberShareReversed:   memberRev,
			CreatorShareReversed:  creatorRev,
			PlatformShareReversed: platformRev,
			Reason:                reason,
			CreatedAt:             time.Now(),
		}
		stored, created, err := s.refundRepo.InsertOrGet(ctx, refund)
		if err != nil {
			return err
		}
		outcome.Refund = stored
		if !created {
			// lost the race: roll everything back, the winner already
			// applied this refund
			outcome.AlreadyProcessed = true
			return errDuplicateRace
		}
		return nil
	})
	if errors.Is(err, errDuplicateRace) {
		return outcome, nil
	}
	if err != nil {
		zap.L().Error("failed to reverse sale", zap.String("refund_id", refundID), zap.Error(err))
		return nil, err
	}
	return outcome, nil
}
