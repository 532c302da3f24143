package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

// GoalsKey is the fixed key the goal collection is persisted under.
const GoalsKey = "timeWinderGoals"

const (
	MoveUp   = "up"
	MoveDown = "down"
)

// CompletionQueue receives the id of every goal that transitions to
// completed. The streak worker consumes it.
type CompletionQueue interface {
	Enqueue(goalID string)
}

// GoalService owns the ordered goal collection. Every mutation runs to
// completion under the mutex and is immediately followed by a write-through
// persist; there is no batching or debouncing. A mutation whose persist
// fails is rolled back, so the in-memory collection never drifts ahead of
// the store.
type GoalService struct {
	kv    domain.KeyValueStore
	clock domain.Clock
	queue CompletionQueue

	mu    sync.Mutex
	goals []*domain.Goal
}

func NewGoalService(kv domain.KeyValueStore, clock domain.Clock, queue CompletionQueue) *GoalService {
	return &GoalService{
		kv:    kv,
		clock: clock,
		queue: queue,
	}
}

// Hydrate loads the persisted collection. A missing key means first run. A
// malformed payload is not fatal: it is logged, the key is cleared and the
// collection resets to empty. Only a storage failure propagates.
func (s *GoalService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, GoalsKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			s.goals = nil
			return nil
		}
		return fmt.Errorf("goal service: hydrate failed: %w", err)
	}

	var goals []*domain.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		log.Printf("Discarding malformed goal payload: %v", err)
		s.goals = nil
		return s.kv.Remove(ctx, GoalsKey)
	}

	kept := goals[:0]
	for _, g := range goals {
		if !g.Valid() {
			log.Printf("Dropping inconsistent goal record %q", g.ID)
			continue
		}
		kept = append(kept, g)
	}

	s.goals = kept
	return nil
}

func (s *GoalService) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.goals)
	if err != nil {
		return fmt.Errorf("goal service: encode failed: %w", err)
	}
	if err := s.kv.Set(ctx, GoalsKey, string(payload)); err != nil {
		return fmt.Errorf("goal service: persist failed: %w", err)
	}
	return nil
}

func (s *GoalService) Add(ctx context.Context, title string, targetDate time.Time, priority string) (*domain.Goal, error) {
	goal, err := domain.NewGoal(title, targetDate, priority)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = append(s.goals, goal)
	if err := s.persistLocked(ctx); err != nil {
		s.goals = s.goals[:len(s.goals)-1]
		return nil, err
	}

	clone := *goal
	return &clone, nil
}

// Remove deletes the goal with the given id. An unknown id is a silent
// no-op.
func (s *GoalService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return nil
	}

	prev := s.goals
	next := make([]*domain.Goal, 0, len(s.goals)-1)
	next = append(next, s.goals[:idx]...)
	next = append(next, s.goals[idx+1:]...)

	s.goals = next
	if err := s.persistLocked(ctx); err != nil {
		s.goals = prev
		return err
	}
	return nil
}

// Move swaps the goal with its immediate neighbor. Unknown ids and
// out-of-bounds moves are silent no-ops.
func (s *GoalService) Move(ctx context.Context, id string, direction string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return nil
	}

	swap := idx + 1
	if direction == MoveUp {
		swap = idx - 1
	}
	if swap < 0 || swap >= len(s.goals) {
		return nil
	}

	s.goals[idx], s.goals[swap] = s.goals[swap], s.goals[idx]
	if err := s.persistLocked(ctx); err != nil {
		s.goals[idx], s.goals[swap] = s.goals[swap], s.goals[idx]
		return err
	}
	return nil
}

// ToggleComplete flips the completion state. A false->true transition stamps
// CompletedAt with the current instant and, once the new state is persisted,
// enqueues a completion job; the reverse transition clears the stamp but
// never touches the streak. A transition the store rejected is rolled back
// and never signaled.
func (s *GoalService) ToggleComplete(ctx context.Context, id string) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return nil, nil
	}

	goal := s.goals[idx]
	prev := *goal

	completed := goal.Complete(s.clock.Now())
	if !completed {
		goal.Reopen()
	}

	if err := s.persistLocked(ctx); err != nil {
		*goal = prev
		return nil, err
	}

	if completed && s.queue != nil {
		s.queue.Enqueue(goal.ID)
	}

	clone := *goal
	return &clone, nil
}

// List returns the collection in insertion/manual order.
func (s *GoalService) List() []*domain.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Classified partitions the collection against the current instant.
func (s *GoalService) Classified() domain.Buckets {
	s.mu.Lock()
	goals := s.snapshotLocked()
	s.mu.Unlock()

	return domain.Classify(goals, s.clock.Now())
}

// Countdown computes the live countdown for one goal.
func (s *GoalService) Countdown(id string) (domain.Countdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx == -1 {
		return domain.Countdown{}, domain.ErrGoalNotFound
	}
	return domain.Remaining(s.goals[idx].TargetDate, s.clock.Now()), nil
}

// CompletedCount reports how many goals are currently completed.
func (s *GoalService) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, g := range s.goals {
		if g.IsCompleted {
			n++
		}
	}
	return n
}

func (s *GoalService) indexLocked(id string) int {
	for i, g := range s.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (s *GoalService) snapshotLocked() []*domain.Goal {
	out := make([]*domain.Goal, len(s.goals))
	for i, g := range s.goals {
		clone := *g
		out[i] = &clone
	}
	return out
}
