package domain

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound = errors.New("key not found")
)

// KeyValueStore is the persistence capability the engine writes through.
// Implementations are expected to be synchronous and reliable; any error they
// return is treated as exceptional and propagated, never swallowed.
type KeyValueStore interface {
	// Get retrieves the raw payload stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the payload under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// MessageGenerator produces a motivational message for a goal description.
// Callers fail open to a fixed fallback when it errors.
type MessageGenerator interface {
	Generate(ctx context.Context, goalDescription string) (string, error)
}
