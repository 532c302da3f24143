package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalTitleTooShort = errors.New("goal title must be at least 3 characters")
	ErrGoalTitleTooLong  = errors.New("goal title is too long (max 200 chars)")
	ErrGoalTargetZero    = errors.New("goal target date is required")
	ErrInvalidPriority   = errors.New("invalid priority (must be Low, Medium, or High)")
	ErrGoalNotFound      = errors.New("goal not found")
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	MinTitleLen    = 3
	MaxTitleLen    = 200
)

// Goal is a single tracked objective with a deadline. The JSON field names
// match the persisted layout, so a collection round-trips byte-compatibly
// through the key-value store.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	TargetDate  time.Time  `json:"targetDate"`
	Priority    string     `json:"priority"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
}

func validPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func NewGoal(title string, targetDate time.Time, priority string) (*Goal, error) {
	trimmed := strings.TrimSpace(title)
	if len(trimmed) < MinTitleLen {
		return nil, ErrGoalTitleTooShort
	}
	if len(trimmed) > MaxTitleLen {
		return nil, ErrGoalTitleTooLong
	}

	if targetDate.IsZero() {
		return nil, ErrGoalTargetZero
	}

	if priority == "" {
		priority = PriorityMedium
	}
	if !validPriority(priority) {
		return nil, ErrInvalidPriority
	}

	return &Goal{
		ID:          uuid.New().String(),
		Title:       trimmed,
		TargetDate:  targetDate,
		Priority:    priority,
		IsCompleted: false,
		CompletedAt: nil,
	}, nil
}

// Complete marks the goal done at the given instant. Returns true only on a
// false->true transition, which is the signal the streak tracker listens for.
func (g *Goal) Complete(now time.Time) bool {
	if g.IsCompleted {
		return false
	}
	at := now.UTC()
	g.IsCompleted = true
	g.CompletedAt = &at
	return true
}

// Reopen reverts a completed goal. CompletedAt is cleared together with the
// flag so the two can never disagree.
func (g *Goal) Reopen() {
	if !g.IsCompleted {
		return
	}
	g.IsCompleted = false
	g.CompletedAt = nil
}

// Valid reports whether the completion flag and timestamp are consistent.
// Used when hydrating untrusted payloads from the key-value store.
func (g *Goal) Valid() bool {
	if g.ID == "" {
		return false
	}
	if g.IsCompleted != (g.CompletedAt != nil) {
		return false
	}
	return true
}
