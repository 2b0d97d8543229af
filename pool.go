package chairs

import (
	"golang.org/x/sync/semaphore"
)

// pool is the set of chairs available in a round. It is not safe for
// concurrent reset; callers hold the game lock for both claim and reset.
type pool struct {
	cap     int64
	claimed int64
	sem     *semaphore.Weighted
}

func newPool(capacity int) *pool {
	p := &pool{}
	p.reset(capacity)
	return p
}

// reset discards any unclaimed chairs and makes capacity new ones available.
func (p *pool) reset(capacity int) {
	p.cap = int64(capacity)
	p.claimed = 0
	p.sem = semaphore.NewWeighted(p.cap)
}

// tryClaim takes one chair without blocking.
func (p *pool) tryClaim() bool {
	if !p.sem.TryAcquire(1) {
		return false
	}

	p.claimed++
	if p.claimed > p.cap {
		panic("chairs: pool over capacity")
	}

	return true
}

func (p *pool) free() int {
	return int(p.cap - p.claimed)
}

func (p *pool) capacity() int {
	return int(p.cap)
}
