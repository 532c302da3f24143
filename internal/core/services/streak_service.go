package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

// StreakKey is the fixed key the completion counter is persisted under,
// separately from the goal collection.
const StreakKey = "timeWinderStreak"

// StreakService tracks the lifetime completion count. The counter only ever
// goes up: un-completing a goal does not decrement it, and there is no
// time-window decay despite the "streak" label.
type StreakService struct {
	kv domain.KeyValueStore

	mu    sync.Mutex
	count int
}

func NewStreakService(kv domain.KeyValueStore) *StreakService {
	return &StreakService{kv: kv}
}

// Hydrate loads the persisted counter. Missing key means zero; a malformed
// or negative payload is logged, cleared and reset to zero.
func (s *StreakService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, StreakKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			s.count = 0
			return nil
		}
		return fmt.Errorf("streak service: hydrate failed: %w", err)
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		log.Printf("Discarding malformed streak payload %q", raw)
		s.count = 0
		return s.kv.Remove(ctx, StreakKey)
	}

	s.count = count
	return nil
}

// Increment bumps the counter by exactly one and persists it.
func (s *StreakService) Increment(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	if err := s.kv.Set(ctx, StreakKey, strconv.Itoa(s.count)); err != nil {
		return s.count, fmt.Errorf("streak service: persist failed: %w", err)
	}
	return s.count, nil
}

func (s *StreakService) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
