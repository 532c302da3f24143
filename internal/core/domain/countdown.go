package domain

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
	secondsPerDay    = 24 * 60 * 60
)

// Countdown is the decomposed time remaining until a goal's deadline.
type Countdown struct {
	Days     int  `json:"days"`
	Hours    int  `json:"hours"`
	Minutes  int  `json:"minutes"`
	Seconds  int  `json:"seconds"`
	Finished bool `json:"finished"`
}

// Remaining computes the countdown from now to target. A target at or before
// now yields the all-zero finished countdown. The difference is truncated to
// whole seconds and decomposed greedily, so hours < 24, minutes < 60 and
// seconds < 60 always hold.
func Remaining(target, now time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{Finished: true}
	}

	total := int64(diff / time.Second)

	return Countdown{
		Days:    int(total / secondsPerDay),
		Hours:   int(total % secondsPerDay / secondsPerHour),
		Minutes: int(total % secondsPerHour / secondsPerMinute),
		Seconds: int(total % secondsPerMinute),
	}
}
