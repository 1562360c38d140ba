// Package kits caches generated kit results locally so they can be reviewed
// and exported after the generation screen is gone. The backend remains the
// owner of every kit; the cache is a convenience copy.
package kits

import (
	"context"

	"github.com/thronos/careerforge/internal/client/models"
)

// Repository stores kit results keyed by kit id.
type Repository interface {
	// Save inserts or replaces a result.
	Save(ctx context.Context, kit *CachedKit) error

	// Get returns the cached kit or common.ErrNotFound.
	Get(ctx context.Context, id string) (*CachedKit, error)

	// List returns cached kits, newest first.
	List(ctx context.Context) ([]CachedKit, error)

	Delete(ctx context.Context, id string) error
}

// CachedKit is a generated kit and the metadata shown in listings.
type CachedKit struct {
	ID             string
	Kind           models.KitKind
	JobID          string
	CreditsCharged int
	CreatedAt      int64
	Result         *models.KitResult
}
