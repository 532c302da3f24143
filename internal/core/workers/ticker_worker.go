package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

// GoalSource is the slice of the goal service the tick loop reads.
type GoalSource interface {
	Classified() domain.Buckets
}

// Snapshot is one tick's worth of derived display state: the classified
// buckets plus a live countdown for every goal that is not completed.
type Snapshot struct {
	At         time.Time                   `json:"at"`
	Buckets    domain.Buckets              `json:"buckets"`
	Countdowns map[string]domain.Countdown `json:"countdowns"`
}

// TickerWorker is the single recurring suspension point of the engine. Once
// per interval it re-reads the clock, re-derives the buckets and countdowns
// and fans the snapshot out to subscribers. It does no I/O and never blocks:
// a subscriber that cannot keep up just misses ticks. Cancelling the context
// stops the ticker and closes every subscriber channel.
type TickerWorker struct {
	source   GoalSource
	clock    domain.Clock
	interval time.Duration

	mu      sync.Mutex
	subs    map[chan Snapshot]struct{}
	stopped bool
}

func NewTickerWorker(source GoalSource, clock domain.Clock, interval time.Duration) *TickerWorker {
	return &TickerWorker{
		source:   source,
		clock:    clock,
		interval: interval,
		subs:     make(map[chan Snapshot]struct{}),
	}
}

func (w *TickerWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Ticker Worker started in background...")
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.broadcast(w.Tick())
			case <-ctx.Done():
				log.Println("Ticker Worker shutting down...")
				w.closeAll()
				return
			}
		}
	}()
}

// Tick derives one snapshot from the current instant.
func (w *TickerWorker) Tick() Snapshot {
	now := w.clock.Now()
	buckets := w.source.Classified()

	countdowns := make(map[string]domain.Countdown, len(buckets.Upcoming)+len(buckets.Overdue))
	for _, g := range buckets.Upcoming {
		countdowns[g.ID] = domain.Remaining(g.TargetDate, now)
	}
	for _, g := range buckets.Overdue {
		countdowns[g.ID] = domain.Remaining(g.TargetDate, now)
	}

	return Snapshot{
		At:         now,
		Buckets:    buckets,
		Countdowns: countdowns,
	}
}

// Subscribe registers a listener. The returned channel is closed when the
// worker shuts down.
func (w *TickerWorker) Subscribe() chan Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if w.stopped {
		close(ch)
		return ch
	}
	w.subs[ch] = struct{}{}
	return ch
}

func (w *TickerWorker) Unsubscribe(ch chan Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.subs[ch]; ok {
		delete(w.subs, ch)
		close(ch)
	}
}

func (w *TickerWorker) broadcast(snap Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for ch := range w.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (w *TickerWorker) closeAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopped = true
	for ch := range w.subs {
		delete(w.subs, ch)
		close(ch)
	}
}
