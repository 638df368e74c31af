package tierservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/domain"
)

const (
	TierBronze   string = "Bronze"
	TierSilver   string = "Silver"
	TierGold     string = "Gold"
	TierPlatinum string = "Platinum"
)

// Milestones is the fixed referral-count milestone ladder. Crossings fire
// once per threshold per member.
var Milestones = []int{10, 25, 50, 100, 250, 500, 1000}

// Notifier receives milestone-crossed signals. Push delivery is an
// external concern; the default implementation just logs.
type Notifier interface {
	MilestoneReached(ctx context.Context, memberID int, milestone int)
}

type MemberRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Member, error)
	UpdateTierState(ctx context.Context, memberID int, tier string, lastMilestone int) error
}

type CreatorRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Creator, error)
}

type Service struct {
	memberRepo  MemberRepo
	creatorRepo CreatorRepo
	notifier    Notifier
}

func New(memberRepo MemberRepo, creatorRepo CreatorRepo, notifier Notifier) *Service {
	return &Service{
		memberRepo:  memberRepo,
		creatorRepo: creatorRepo,
		notifier:    notifier,
	}
}

// TierFor derives the reward tier from a referral count. Members below the
// tier1 threshold are still labeled Bronze: accepted product policy, not a
// bug.
func TierFor(totalReferred int, t *domain.TierThresholds) string {
	switch {
	case totalReferred >= t.Tier4:
		return TierPlatinum
	case totalReferred >= t.Tier3:
		return TierGold
	case totalReferred >= t.Tier2:
		return TierSilver
	default:
		return TierBronze
	}
}

// CrossedMilestones returns the milestones passed between prev and next
// referral counts. Evaluating only the delta keeps notifications from
// re-firing on later recomputation passes.
func CrossedMilestones(prev, next int) []int {
	var crossed []int
	for _, m := range Milestones {
		if prev < m && next >= m {
			crossed = append(crossed, m)
		}
	}
	return crossed
}

// Evaluate refreshes a member's tier and fires newly-crossed milestone
// notifications. prevReferred/newReferred come from the ledger write that
// triggered the evaluation.
func (s *Service) Evaluate(ctx context.Context, memberID, prevReferred, newReferred int) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		zap.L().Warn("tier evaluation for missing member", zap.Int("member_id", memberID))
		return nil
	}

	creator, err := s.creatorRepo.FindByID(ctx, member.CreatorID)
	if err != nil {
		return err
	}
	if creator == nil {
		zap.L().Warn("tier evaluation with missing creator", zap.Int("creator_id", member.CreatorID))
		return nil
	}

	tier := TierFor(newReferred, &creator.TierThresholds)

	// lastMilestone guards against double-firing when the same delta is
	// evaluated twice
	lastMilestone := member.LastMilestone
	for _, m := range CrossedMilestones(prevReferred, newReferred) {
		if m <= member.LastMilestone {
			continue
		}
		s.notifier.MilestoneReached(ctx, memberID, m)
		lastMilestone = m
	}

	if tier == member.Tier && lastMilestone == member.LastMilestone {
		return nil
	}
	return s.memberRepo.UpdateTierState(ctx, memberID, tier, lastMilestone)
}

// LogNotifier is the default Notifier.
type LogNotifier struct{}

func (LogNotifier) MilestoneReached(_ context.Context, memberID int, milestone int) {
	zap.L().Info("milestone reached", zap.Int("member_id", memberID), zap.Int("milestone", milestone))
}
