package processor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/smilaev/refledger/internal/metrics"
)

// Breaker pauses event dispatch after a run of consecutive handler
// failures, so a failing downstream (usually the datastore) is not
// hammered. It reopens by itself once the cooldown has passed.
type Breaker struct {
	mu          sync.Mutex
	threshold   int
	cooldown    time.Duration
	consecutive int
	openUntil   time.Time
}

func NewBreaker(threshold int, cooldown time.Duration) *Breaker {
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
	}
}

func (b *Breaker) Allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if now.Before(b.openUntil) {
		return false
	}
	metrics.BreakerState.Set(0)
	return true
}

func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.consecutive = 0
}

func (b *Breaker) Failure(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.consecutive++
	if b.consecutive < b.threshold {
		return
	}
	b.consecutive = 0
	b.openUntil = now.Add(b.cooldown)
	metrics.BreakerState.Set(1)
	zap.L().Warn("circuit breaker tripped, pausing dispatch",
		zap.Duration("cooldown", b.cooldown))
}
