package kvstore

import (
	"context"
	"errors"
)

var ErrEmptyKey = errors.New("empty key")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=kvstore_test

// Store is a string key-value store holding the small pieces of state
// (goal mode, custom messages, rotation tracking) that outlive the process.
type Store interface {
	// Get returns false if the key is not set.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete of a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
