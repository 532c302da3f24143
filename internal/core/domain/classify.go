package domain

import "time"

// Buckets holds the three mutually exclusive display categories. Every goal
// of the source collection lands in exactly one of them, in its original
// relative order.
type Buckets struct {
	Upcoming  []*Goal `json:"upcoming"`
	Overdue   []*Goal `json:"overdue"`
	Completed []*Goal `json:"completed"`
}

// Classify partitions goals by completion flag and deadline. Completed wins
// regardless of the target date; otherwise a target strictly before now is
// overdue and anything else is upcoming. Pure, so a goal migrates between
// buckets as now advances without being mutated.
func Classify(goals []*Goal, now time.Time) Buckets {
	b := Buckets{
		Upcoming:  []*Goal{},
		Overdue:   []*Goal{},
		Completed: []*Goal{},
	}

	for _, g := range goals {
		switch {
		case g.IsCompleted:
			b.Completed = append(b.Completed, g)
		case g.TargetDate.Before(now):
			b.Overdue = append(b.Overdue, g)
		default:
			b.Upcoming = append(b.Upcoming, g)
		}
	}

	return b
}
