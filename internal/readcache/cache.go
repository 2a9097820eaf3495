// Package readcache caches per-learner read results (due lists and stats)
// for a short time and collapses concurrent identical reads.
package readcache

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var errClosed = errors.New("cache closed")

// Scope is everything one learner can read from one collection. Mutations
// invalidate a whole scope.
type Scope struct {
	UserID       string
	CollectionID uuid.UUID
}

func (s Scope) key() string {
	return "cardvault:reads:" + s.UserID + ":" + s.CollectionID.String()
}

// Cache stores JSON-encodable values under a field of a scope.
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was
	// present.
	Get(ctx context.Context, scope Scope, field string, dest any) (bool, error)
	Set(ctx context.Context, scope Scope, field string, value any) error
	Invalidate(ctx context.Context, scope Scope) error
	Close() error
}
