package workers

import (
	"context"
	"log"
)

// StreakTracker is the slice of the streak service this worker needs.
type StreakTracker interface {
	Increment(ctx context.Context) (int, error)
}

type CompletionJob struct {
	GoalID string
}

// StreakWorker consumes completion events off a buffered channel and bumps
// the streak counter. Goal persistence and streak persistence are two
// separate writes; a crash between them can leave the counter one behind,
// which is accepted (see DESIGN.md).
type StreakWorker struct {
	tracker StreakTracker
	jobs    chan CompletionJob
}

func NewStreakWorker(tracker StreakTracker) *StreakWorker {
	return &StreakWorker{
		tracker: tracker,
		jobs:    make(chan CompletionJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(goalID string) {
	select {
	case w.jobs <- CompletionJob{GoalID: goalID}:
	default:
		log.Printf("Streak Worker queue full! Dropping job for goal %s", goalID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job CompletionJob) {
	count, err := w.tracker.Increment(ctx)
	if err != nil {
		log.Printf("Worker failed to increment streak for goal %s: %v", job.GoalID, err)
		return
	}
	log.Printf("Streak incremented to %d (goal %s completed)", count, job.GoalID)
}
