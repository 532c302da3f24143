package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/timewinder-app/timewinder/internal/core/domain"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2029, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Target in the past is finished with zero fields", func(t *testing.T) {
		c := domain.Remaining(now.Add(-time.Hour), now)

		assert.True(t, c.Finished)
		assert.Equal(t, domain.Countdown{Finished: true}, c)
	})

	t.Run("Target equal to now is finished", func(t *testing.T) {
		c := domain.Remaining(now, now)

		assert.True(t, c.Finished)
		assert.Zero(t, c.Days+c.Hours+c.Minutes+c.Seconds)
	})

	t.Run("Greedy decomposition: 90061s is 1d 1h 1m 1s", func(t *testing.T) {
		c := domain.Remaining(now.Add(90061*time.Second), now)

		assert.False(t, c.Finished)
		assert.Equal(t, 1, c.Days)
		assert.Equal(t, 1, c.Hours)
		assert.Equal(t, 1, c.Minutes)
		assert.Equal(t, 1, c.Seconds)
	})

	t.Run("Sub-second remainder truncates toward zero", func(t *testing.T) {
		c := domain.Remaining(now.Add(2*time.Second+999*time.Millisecond), now)

		assert.False(t, c.Finished)
		assert.Equal(t, 2, c.Seconds)
		assert.Zero(t, c.Days+c.Hours+c.Minutes)
	})

	t.Run("Fields stay within natural ranges and reconstruct the difference", func(t *testing.T) {
		diffs := []int64{1, 59, 60, 3599, 3600, 86399, 86400, 90061, 31536000, 123456789}

		for _, secs := range diffs {
			c := domain.Remaining(now.Add(time.Duration(secs)*time.Second), now)

			assert.Less(t, c.Hours, 24)
			assert.Less(t, c.Minutes, 60)
			assert.Less(t, c.Seconds, 60)

			total := int64(c.Days)*86400 + int64(c.Hours)*3600 + int64(c.Minutes)*60 + int64(c.Seconds)
			assert.Equal(t, secs, total, "decomposition of %d seconds", secs)
		}
	})
}
