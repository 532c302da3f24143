package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

func TestNewGoal(t *testing.T) {
	target := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success: defaults to Medium priority, not completed", func(t *testing.T) {
		g, err := domain.NewGoal("Ship v1", target, "")

		require.NoError(t, err)
		assert.NotEmpty(t, g.ID)
		assert.Equal(t, "Ship v1", g.Title)
		assert.Equal(t, domain.PriorityMedium, g.Priority)
		assert.False(t, g.IsCompleted)
		assert.Nil(t, g.CompletedAt)
		assert.True(t, g.Valid())
	})

	t.Run("Success: trims surrounding whitespace", func(t *testing.T) {
		g, err := domain.NewGoal("  run a marathon  ", target, domain.PriorityHigh)

		require.NoError(t, err)
		assert.Equal(t, "run a marathon", g.Title)
		assert.Equal(t, domain.PriorityHigh, g.Priority)
	})

	t.Run("Error: title shorter than 3 characters", func(t *testing.T) {
		_, err := domain.NewGoal("go", target, "")
		assert.Equal(t, domain.ErrGoalTitleTooShort, err)

		_, err = domain.NewGoal("   a   ", target, "")
		assert.Equal(t, domain.ErrGoalTitleTooShort, err)
	})

	t.Run("Error: zero target date", func(t *testing.T) {
		_, err := domain.NewGoal("Ship v1", time.Time{}, "")
		assert.Equal(t, domain.ErrGoalTargetZero, err)
	})

	t.Run("Error: unknown priority", func(t *testing.T) {
		_, err := domain.NewGoal("Ship v1", target, "Urgent")
		assert.Equal(t, domain.ErrInvalidPriority, err)
	})

	t.Run("Fresh goals get distinct ids", func(t *testing.T) {
		a, err := domain.NewGoal("first", target, "")
		require.NoError(t, err)
		b, err := domain.NewGoal("second", target, "")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestGoal_CompleteReopen(t *testing.T) {
	target := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2029, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Complete stamps the instant and reports the transition", func(t *testing.T) {
		g, err := domain.NewGoal("Ship v1", target, "")
		require.NoError(t, err)

		assert.True(t, g.Complete(now))
		assert.True(t, g.IsCompleted)
		require.NotNil(t, g.CompletedAt)
		assert.Equal(t, now, *g.CompletedAt)
		assert.True(t, g.Valid())
	})

	t.Run("Completing twice is not a transition", func(t *testing.T) {
		g, err := domain.NewGoal("Ship v1", target, "")
		require.NoError(t, err)

		require.True(t, g.Complete(now))
		assert.False(t, g.Complete(now.Add(time.Hour)))
		assert.Equal(t, now, *g.CompletedAt)
	})

	t.Run("Reopen clears flag and stamp together", func(t *testing.T) {
		g, err := domain.NewGoal("Ship v1", target, "")
		require.NoError(t, err)

		g.Complete(now)
		g.Reopen()

		assert.False(t, g.IsCompleted)
		assert.Nil(t, g.CompletedAt)
		assert.True(t, g.Valid())

		g.Reopen() // no-op on an open goal
		assert.False(t, g.IsCompleted)
	})
}

func TestGoal_Valid(t *testing.T) {
	t.Run("Flag and stamp must agree", func(t *testing.T) {
		stamp := time.Now().UTC()

		bad := &domain.Goal{ID: "x", IsCompleted: true, CompletedAt: nil}
		assert.False(t, bad.Valid())

		bad = &domain.Goal{ID: "x", IsCompleted: false, CompletedAt: &stamp}
		assert.False(t, bad.Valid())
	})

	t.Run("Missing id is invalid", func(t *testing.T) {
		g := &domain.Goal{}
		assert.False(t, g.Valid())
	})
}

func TestGoal_JSONLayout(t *testing.T) {
	target := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	g, err := domain.NewGoal("Ship v1", target, domain.PriorityHigh)
	require.NoError(t, err)

	payload, err := json.Marshal(g)
	require.NoError(t, err)

	assert.Contains(t, string(payload), `"targetDate":"2030-01-01T00:00:00Z"`)
	assert.Contains(t, string(payload), `"completedAt":null`)
	assert.Contains(t, string(payload), `"isCompleted":false`)

	var back domain.Goal
	require.NoError(t, json.Unmarshal(payload, &back))
	assert.Equal(t, *g, back)
}
