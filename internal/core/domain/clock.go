package domain

import "time"

// Clock supplies the current instant. All non-determinism around reading
// "now" lives behind this interface so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func NewSystemClock() Clock {
	return systemClock{}
}
