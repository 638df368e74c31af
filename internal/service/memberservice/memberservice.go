package memberservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/pkg/refcode"
)

type Repo interface {
	FindByMembershipID(ctx context.Context, membershipID string) (*domain.Member, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Member, error)
	FindByID(ctx context.Context, id int) (*domain.Member, error)
	Save(ctx context.Context, member *domain.Member) error
	UpdateStatus(ctx context.Context, membershipID string, status string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Service struct {
	repo     Repo
	cache    Cache
	cacheTTL time.Duration
}

func New(repo Repo, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Register creates a member record at signup/import time and issues its
// referral code. The referredBy code, when present, must resolve to an
// existing member at this moment; it is never re-validated afterwards.
func (s *Service) Register(ctx context.Context, creatorID int, membershipID string, referredBy *string) (*domain.Member, error) {
	existing, err := s.repo.FindByMembershipID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("member already registered", zap.String("membership_id", membershipID))
		return existing, nil
	}

	if referredBy != nil && *referredBy != "" {
		referrer, err := s.repo.FindByReferralCode(ctx, *referredBy)
		if err != nil {
			return nil, err
		}
		if referrer == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCode, *referredBy)
		}
	} else {
		referredBy = nil
	}

	member := &domain.Member{
		CreatorID:    creatorID,
		MembershipID: membershipID,
		ReferralCode: refcode.Generate(),
		ReferredBy:   referredBy,
		Status:       domain.MemberStatusActive,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Save(ctx, member); err != nil {
		zap.L().Error("can't save member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

// GetStats serves the member stats read path through the member:{id}
// cache key; the processor invalidates it after every ledger write.
func (s *Service) GetStats(ctx context.Context, id int) (*domain.Member, error) {
	key := fmt.Sprintf("member:%d", id)
	var cached domain.Member
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		zap.L().Warn("member stats cache read failed", zap.Error(err))
	} else if ok {
		return &cached, nil
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get member stats", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, nil
	}

	if err := s.cache.Set(ctx, key, member, s.cacheTTL); err != nil {
		zap.L().Warn("member stats cache write failed", zap.Error(err))
	}
	return member, nil
}

// Cancel marks a membership cancelled. Counters, commissions and
// attribution pointers are left untouched; a cancelled referrer becomes a
// dangling but inert pointer.
func (s *Service) Cancel(ctx context.Context, membershipID string) error {
	member, err := s.repo.FindByMembershipID(ctx, membershipID)
	if err != nil {
		return err
	}
	if member == nil {
		zap.L().Warn("cancel for unknown membership", zap.String("membership_id", membershipID))
		return nil
	}
	if err := s.repo.UpdateStatus(ctx, membershipID, domain.MemberStatusCancelled); err != nil {
		return err
	}
	return nil
}
