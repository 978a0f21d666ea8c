// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/rubingroup/rubin-backend/internal/models"
)

// ErrNotFound is returned when a product document does not exist.
var ErrNotFound = errors.New("product not found")

// ProductStore is the catalog's document-store boundary. The hosted
// implementation is Firestore; tests substitute an in-memory store.
type ProductStore interface {
	// List returns the full collection. The storefront fetches everything
	// and filters in memory; there is no pagination.
	List(ctx context.Context) ([]models.Product, error)

	Get(ctx context.Context, id string) (*models.Product, error)

	// GetBySlug returns the single product routed by slug, or ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)

	Create(ctx context.Context, p *models.Product) (*models.Product, error)

	// Update writes only the supplied field set; unspecified fields are
	// untouched. Returns the record as stored after the write.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error)

	// Delete removes the document permanently. There is no tombstone.
	Delete(ctx context.Context, id string) error

	// IncrementLikes adjusts the like counter by delta inside a store-side
	// transaction, clamping at zero. This is the only like-update path.
	IncrementLikes(ctx context.Context, id string, delta int64) (*models.Product, error)
}
