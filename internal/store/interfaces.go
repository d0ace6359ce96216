package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/preferences_mock.go -package=mock

// Preferences is a string key-value store scoped to one namespace. Absence is
// reported by the bool result of Get, never by an error.
type Preferences interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
