package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

func mustGoal(t *testing.T, title string, target time.Time) *domain.Goal {
	t.Helper()
	g, err := domain.NewGoal(title, target, "")
	require.NoError(t, err)
	return g
}

func TestClassify(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Empty collection yields three empty buckets", func(t *testing.T) {
		b := domain.Classify(nil, now)

		assert.Empty(t, b.Upcoming)
		assert.Empty(t, b.Overdue)
		assert.Empty(t, b.Completed)
	})

	t.Run("Total order-preserving partition", func(t *testing.T) {
		future1 := mustGoal(t, "future one", now.Add(time.Hour))
		past := mustGoal(t, "already late", now.Add(-time.Minute))
		done := mustGoal(t, "finished early", now.Add(time.Hour))
		done.Complete(now)
		future2 := mustGoal(t, "future two", now.Add(48*time.Hour))

		goals := []*domain.Goal{future1, past, done, future2}
		b := domain.Classify(goals, now)

		assert.Len(t, b.Upcoming, 2)
		assert.Len(t, b.Overdue, 1)
		assert.Len(t, b.Completed, 1)
		assert.Equal(t, len(goals), len(b.Upcoming)+len(b.Overdue)+len(b.Completed))

		assert.Equal(t, future1.ID, b.Upcoming[0].ID)
		assert.Equal(t, future2.ID, b.Upcoming[1].ID)
		assert.Equal(t, past.ID, b.Overdue[0].ID)
		assert.Equal(t, done.ID, b.Completed[0].ID)
	})

	t.Run("Completed wins over the target date", func(t *testing.T) {
		g := mustGoal(t, "late but done", now.Add(-time.Hour))
		g.Complete(now)

		b := domain.Classify([]*domain.Goal{g}, now)

		assert.Len(t, b.Completed, 1)
		assert.Empty(t, b.Overdue)
	})

	t.Run("Target exactly at now is upcoming", func(t *testing.T) {
		g := mustGoal(t, "right on the line", now)

		b := domain.Classify([]*domain.Goal{g}, now)

		assert.Len(t, b.Upcoming, 1)
		assert.Empty(t, b.Overdue)
	})

	t.Run("Goal migrates to overdue as now advances, without mutation", func(t *testing.T) {
		g := mustGoal(t, "Ship v1", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

		before := domain.Classify([]*domain.Goal{g}, time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC))
		assert.Len(t, before.Upcoming, 1)

		after := domain.Classify([]*domain.Goal{g}, time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC))
		assert.Len(t, after.Overdue, 1)
		assert.False(t, g.IsCompleted)
	})
}
