package rankservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/domain"
)

type Repo interface {
	ListRankRows(ctx context.Context, creatorID *int) ([]domain.RankRow, error)
	UpdateRanks(ctx context.Context, field string, assignments []domain.RankAssignment) error
	FindByID(ctx context.Context, id int) (*domain.Member, error)
	ListTop(ctx context.Context, field string, creatorID *int, limit int) ([]domain.Member, error)
	CountAheadByEarnings(ctx context.Context, earnings decimal.Decimal, createdAt time.Time) (int, error)
	CountAheadByReferrals(ctx context.Context, referred int, createdAt time.Time) (int, error)
	CountAheadInCommunity(ctx context.Context, creatorID int, earnings decimal.Decimal, createdAt time.Time) (int, error)
}

type CreatorRepo interface {
	ListIDs(ctx context.Context) ([]int, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

const (
	ScopeGlobal    string = "global"
	ScopeCommunity string = "community"
)

var (
	ErrUnknownScope  = errors.New("unknown leaderboard scope")
	ErrUnknownMetric = errors.New("unknown leaderboard metric")
	ErrMemberMissing = errors.New("member not found")
)

type Service struct {
	repo        Repo
	creatorRepo CreatorRepo
	cache       Cache
	cacheTTL    time.Duration
}

func New(repo Repo, creatorRepo CreatorRepo, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		creatorRepo: creatorRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// Entry is one leaderboard line.
type Entry struct {
	MemberID     int             `json:"member_id"`
	ReferralCode string          `json:"referral_code"`
	Rank         int             `json:"rank"`
	Earnings     decimal.Decimal `json:"earnings"`
	Referred     int             `json:"referred"`
}

// RecomputeGlobalEarningsRanks rewrites every member's cached
// global-by-earnings rank. Full recompute by design: rank is read far more
// often than it changes meaningfully, so it runs on a schedule, never per
// webhook.
func (s *Service) RecomputeGlobalEarningsRanks(ctx context.Context) error {
	rows, err := s.repo.ListRankRows(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateRanks(ctx, domain.RankFieldEarnings, AssignRanks(earningsMetrics(rows))); err != nil {
		return err
	}
	return s.invalidateLeaderboards(ctx)
}

func (s *Service) RecomputeGlobalReferralsRanks(ctx context.Context) error {
	rows, err := s.repo.ListRankRows(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateRanks(ctx, domain.RankFieldReferrals, AssignRanks(referralMetrics(rows))); err != nil {
		return err
	}
	return s.invalidateLeaderboards(ctx)
}

func (s *Service) RecomputeCommunityRanks(ctx context.Context, creatorID int) error {
	rows, err := s.repo.ListRankRows(ctx, &creatorID)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateRanks(ctx, domain.RankFieldCommunity, AssignRanks(earningsMetrics(rows))); err != nil {
		return err
	}
	return s.invalidateLeaderboards(ctx)
}

// RecomputeAll is the scheduled batch entry point.
func (s *Service) RecomputeAll(ctx context.Context) error {
	if err := s.RecomputeGlobalEarningsRanks(ctx); err != nil {
		return fmt.Errorf("recompute global earnings ranks: %w", err)
	}
	if err := s.RecomputeGlobalReferralsRanks(ctx); err != nil {
		return fmt.Errorf("recompute global referrals ranks: %w", err)
	}
	creatorIDs, err := s.creatorRepo.ListIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range creatorIDs {
		if err := s.RecomputeCommunityRanks(ctx, id); err != nil {
			return fmt.Errorf("recompute community ranks for creator %d: %w", id, err)
		}
	}
	return nil
}

func (s *Service) invalidateLeaderboards(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx, "leaderboard:*"); err != nil {
		zap.L().Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
	return nil
}

// GetLeaderboard serves cache-fronted leaderboard reads. Staleness is
// bounded by the cache TTL plus the recompute interval.
func (s *Service) GetLeaderboard(ctx context.Context, scope, metric string, creatorID *int, limit int) ([]Entry, error) {
	if scope != ScopeGlobal && scope != ScopeCommunity {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScope, scope)
	}
	if metric != domain.RankFieldEarnings && metric != domain.RankFieldReferrals {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	if scope == ScopeCommunity && creatorID == nil {
		return nil, fmt.Errorf("%w: community scope requires creator id", ErrUnknownScope)
	}

	key := leaderboardKey(scope, metric, creatorID, limit)
	var cached []Entry
	if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
		zap.L().Warn("leaderboard cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	var filter *int
	if scope == ScopeCommunity {
		filter = creatorID
	}
	members, err := s.repo.ListTop(ctx, metric, filter, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(members))
	for i, m := range members {
		entries[i] = Entry{
			MemberID:     m.ID,
			ReferralCode: m.ReferralCode,
			Rank:         cachedRank(&m, scope, metric),
			Earnings:     m.LifetimeEarnings,
			Referred:     m.TotalReferred,
		}
	}

	if err := s.cache.Set(ctx, key, entries, s.cacheTTL); err != nil {
		zap.L().Warn("leaderboard cache write failed", zap.Error(err))
	}
	return entries, nil
}

func leaderboardKey(scope, metric string, creatorID *int, limit int) string {
	if scope == ScopeCommunity {
		return fmt.Sprintf("leaderboard:%s:%d:%s:%d", scope, *creatorID, metric, limit)
	}
	return fmt.Sprintf("leaderboard:%s:%s:%d", scope, metric, limit)
}

func cachedRank(m *domain.Member, scope, metric string) int {
	if scope == ScopeCommunity {
		return m.CommunityRank
	}
	if metric == domain.RankFieldReferrals {
		return m.ReferralsRank
	}
	return m.EarningsRank
}

// GetMemberRank answers "where do I rank right now" with a direct count
// query, intentionally bypassing the cached rank columns.
func (s *Service) GetMemberRank(ctx context.Context, memberID int, scope, metric string) (int, error) {
	member, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		return 0, err
	}
	if member == nil {
		return 0, ErrMemberMissing
	}

	var ahead int
	switch {
	case scope == ScopeCommunity:
		ahead, err = s.repo.CountAheadInCommunity(ctx, member.CreatorID, member.LifetimeEarnings, member.CreatedAt)
	case metric == domain.RankFieldReferrals:
		ahead, err = s.repo.CountAheadByReferrals(ctx, member.TotalReferred, member.CreatedAt)
	case metric == domain.RankFieldEarnings:
		ahead, err = s.repo.CountAheadByEarnings(ctx, member.LifetimeEarnings, member.CreatedAt)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	if err != nil {
		return 0, err
	}
	return ahead + 1, nil
}
