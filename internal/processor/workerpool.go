package processor

import (
	"context"
	"hash/fnv"
	"sync"

	"go.uber.org/zap"
)

type Task func() error

// KeyedPool is a worker pool with serialized lanes: tasks sharing a key
// always land on the same lane and run in submission order. This is what
// guarantees a refund is never applied before its payment within one
// process.
type KeyedPool struct {
	lanes []chan Task
	wg    sync.WaitGroup
}

func NewKeyedPool(lanes int) *KeyedPool {
	if lanes < 1 {
		lanes = 1
	}
	p := &KeyedPool{lanes: make([]chan Task, lanes)}
	for i := range p.lanes {
		p.lanes[i] = make(chan Task, 1)
		p.wg.Add(1)
		go p.worker(p.lanes[i])
	}
	return p
}

func (p *KeyedPool) worker(lane chan Task) {
	defer p.wg.Done()
	for task := range lane {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

func laneIndex(key string, lanes int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(lanes))
}

// AddTask routes the task to its key's lane, blocking while the lane is
// busy so same-key ordering holds.
func (p *KeyedPool) AddTask(ctx context.Context, key string, task Task) error {
	lane := p.lanes[laneIndex(key, len(p.lanes))]
	select {
	case <-ctx.Done():
		return ctx.Err()
	case lane <- task:
		return nil
	}
}

func (p *KeyedPool) Close() {
	for _, lane := range p.lanes {
		close(lane)
	}
	p.wg.Wait()
}
