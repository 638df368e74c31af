package creatorservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Creator, error)
	UpdateTierThresholds(ctx context.Context, creatorID int, t *domain.TierThresholds) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCreator(ctx context.Context, id int) (*domain.Creator, error) {
	creator, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get creator", zap.Error(err))
		return nil, err
	}
	return creator, nil
}

// UpdateTierThresholds validates the strictly-ascending invariant before
// persisting. Invalid configurations are rejected here and never written.
func (s *Service) UpdateTierThresholds(ctx context.Context, creatorID int, t *domain.TierThresholds) error {
	if t.Tier1 <= 0 || t.Tier1 >= t.Tier2 || t.Tier2 >= t.Tier3 || t.Tier3 >= t.Tier4 {
		return fmt.Errorf("%w: tier thresholds must be strictly ascending, got %d/%d/%d/%d",
			domain.ErrConfiguration, t.Tier1, t.Tier2, t.Tier3, t.Tier4)
	}

	creator, err := s.repo.FindByID(ctx, creatorID)
	if err != nil {
		return err
	}
	if creator == nil {
		return fmt.Errorf("%w: creator %d not found", domain.ErrConfiguration, creatorID)
	}

	if err := s.repo.UpdateTierThresholds(ctx, creatorID, t); err != nil {
		zap.L().Error("failed to update tier thresholds", zap.Error(err))
		return err
	}
	return nil
}
