package service

import "sync"

// Generations tracks a per-user change counter. Every cart or coupon mutation bumps it;
// a checkout quote captures the counter at entry and is discarded if it moved before the
// quote finished. Last trigger wins, not last completion.
type Generations struct {
	mu       sync.Mutex
	counters map[string]uint64
}

func NewGenerations() *Generations {
	return &Generations{counters: make(map[string]uint64)}
}

func (g *Generations) Bump(userID string) {
	g.mu.Lock()
	g.counters[userID]++
	g.mu.Unlock()
}

func (g *Generations) Current(userID string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counters[userID]
}
