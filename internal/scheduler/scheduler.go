package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron"
	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/config"
	"github.com/smilaev/refledger/internal/metrics"
)

type RankEngine interface {
	RecomputeAll(ctx context.Context) error
}

type StaleReleaser interface {
	ReleaseStale(ctx context.Context, stuckFor time.Duration) error
}

const (
	jobTimeout      = 2 * time.Minute
	staleSchedule   = "@every 1m"
	staleClaimedFor = 5 * time.Minute
)

// Scheduler owns the periodic jobs: the full rank recompute (leaderboards
// tolerate a few minutes of staleness, so this never runs per webhook)
// and the stale-claim release sweep.
type Scheduler struct {
	cron *cron.Cron
}

func Start(cfg *config.Config, ranks RankEngine, releaser StaleReleaser) (*Scheduler, error) {
	c := cron.New()

	recompute := func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := ranks.RecomputeAll(ctx); err != nil {
			zap.L().Error("rank recompute failed", zap.Error(err))
			return
		}
		metrics.RankRecomputes.Inc()
	}
	if err := c.AddFunc(cfg.RankSchedule, recompute); err != nil {
		return nil, err
	}

	if err := c.AddFunc(staleSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := releaser.ReleaseStale(ctx, staleClaimedFor); err != nil {
			zap.L().Error("stale event release failed", zap.Error(err))
		}
	}); err != nil {
		return nil, err
	}

	// warm the rank columns once at startup
	recompute()

	c.Start()
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Close() {
	s.cron.Stop()
}
