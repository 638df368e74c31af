package attributionservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/pkg/refcode"
)

// AttributionWindow: a click attributes its fingerprint to the referrer
// for this long. Configuration constant, not derived.
const AttributionWindow = 30 * 24 * time.Hour

const touchTimeout = 3 * time.Second

type MemberRepo interface {
	FindByReferralCode(ctx context.Context, code string) (*domain.Member, error)
	TouchLastActive(ctx context.Context, memberID int, at time.Time) error
}

type ClickRepo interface {
	FindActive(ctx context.Context, memberID int, fingerprint string, now time.Time) (*domain.AttributionClick, error)
	Save(ctx context.Context, click *domain.AttributionClick) error
}

type Service struct {
	memberRepo MemberRepo
	clickRepo  ClickRepo
	now        func() time.Time
}

func New(memberRepo MemberRepo, clickRepo ClickRepo) *Service {
	return &Service{
		memberRepo: memberRepo,
		clickRepo:  clickRepo,
		now:        time.Now,
	}
}

// AttributionOutcome describes what a click did and who it credits.
type AttributionOutcome struct {
	Click        *domain.AttributionClick
	Member       *domain.Member
	Deduplicated bool
}

// RecordClick accepts a referral-code click. Repeat clicks from the same
// fingerprint inside the active window return the existing record without
// creating a row or extending the window, so click volume cannot be
// inflated. The referrer's lastActive touch is fire-and-forget: its
// failure never aborts click acceptance.
func (s *Service) RecordClick(ctx context.Context, referralCode, fingerprint, ipHash, userAgent string) (*AttributionOutcome, error) {
	if !refcode.IsValid(referralCode) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCode, referralCode)
	}

	member, err := s.memberRepo.FindByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCode, referralCode)
	}

	now := s.now()
	outcome := &AttributionOutcome{Member: member}

	existing, err := s.clickRepo.FindActive(ctx, member.ID, fingerprint, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		outcome.Click = existing
		outcome.Deduplicated = true
		s.touchLastActive(member.ID, now)
		return outcome, nil
	}

	click := &domain.AttributionClick{
		MemberID:    member.ID,
		Fingerprint: fingerprint,
		IPHash:      ipHash,
		UserAgent:   userAgent,
		CreatedAt:   now,
		ExpiresAt:   now.Add(AttributionWindow),
	}
	if err := s.clickRepo.Save(ctx, click); err != nil {
		return nil, err
	}
	outcome.Click = click

	s.touchLastActive(member.ID, now)
	return outcome, nil
}

func (s *Service) touchLastActive(memberID int, at time.Time) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), touchTimeout)
		defer cancel()
		if err := s.memberRepo.TouchLastActive(ctx, memberID, at); err != nil {
			zap.L().Warn("lastActive touch failed", zap.Int("member_id", memberID), zap.Error(err))
		}
	}()
}
