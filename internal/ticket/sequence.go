package ticket

import (
	"context"
	"sync"
)

// Sequencer hands out the next ticket number for a given day key
// (yyyymmdd). Numbers restart at 1 each day.
type Sequencer interface {
	Next(ctx context.Context, day string) (int64, error)
}

// CounterSequencer is the in-process fallback used with the memory
// store and in tests. Counters reset on restart, same as the store.
type CounterSequencer struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewCounterSequencer() *CounterSequencer {
	return &CounterSequencer{counters: make(map[string]int64)}
}

func (s *CounterSequencer) Next(_ context.Context, day string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[day]++
	return s.counters[day], nil
}
