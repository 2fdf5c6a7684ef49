package memcache

import "sync"

// UsageCounter is an in-memory per-key counter. Counts reset when the
// process restarts.
type UsageCounter interface {
	Increment(key string) int
	Count(key string) int
	Reset(key string)
	Snapshot() map[string]int
}

type usageCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewUsageCounter() UsageCounter {
	return &usageCounter{
		counts: make(map[string]int),
	}
}

func (u *usageCounter) Increment(key string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.counts[key]++
	return u.counts[key]
}

func (u *usageCounter) Count(key string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.counts[key]
}

func (u *usageCounter) Reset(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.counts, key)
}

func (u *usageCounter) Snapshot() map[string]int {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make(map[string]int, len(u.counts))
	for k, v := range u.counts {
		out[k] = v
	}
	return out
}
