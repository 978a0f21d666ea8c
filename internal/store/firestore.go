// internal/store/firestore.go
package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rubingroup/rubin-backend/internal/config"
	"github.com/rubingroup/rubin-backend/internal/models"
)

// FirestoreProductStore backs the catalog with a hosted Firestore
// collection.
type FirestoreProductStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreProductStore(ctx context.Context, cfg config.FirestoreConfig, credentialsJSON string) (*FirestoreProductStore, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &FirestoreProductStore{
		client:     client,
		collection: cfg.ProductsCollection,
	}, nil
}

func (s *FirestoreProductStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreProductStore) products() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

func (s *FirestoreProductStore) List(ctx context.Context) ([]models.Product, error) {
	iter := s.products().Documents(ctx)
	defer iter.Stop()

	var result []models.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		var p models.Product
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		result = append(result, p)
	}

	return result, nil
}

func (s *FirestoreProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	doc, err := s.products().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	var p models.Product
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", id, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (s *FirestoreProductStore) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	iter := s.products().Where("slug", "==", slug).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query slug %q: %w", slug, err)
	}

	var p models.Product
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", doc.Ref.ID, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (s *FirestoreProductStore) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	ref := s.products().NewDoc()
	if _, err := ref.Set(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	p.ID = ref.ID
	return p, nil
}

func (s *FirestoreProductStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: time.Now()})

	if _, err := s.products().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	return s.Get(ctx, id)
}

func (s *FirestoreProductStore) Delete(ctx context.Context, id string) error {
	// Existence check first: Firestore deletes are no-ops on missing
	// documents, but callers expect a 404.
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if _, err := s.products().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreProductStore) IncrementLikes(ctx context.Context, id string, delta int64) (*models.Product, error) {
	ref := s.products().Doc(id)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var p models.Product
		if err := doc.DataTo(&p); err != nil {
			return err
		}

		next := p.Likes + delta
		if next < 0 {
			next = 0
		}
		return tx.Update(ref, []firestore.Update{{Path: "likes", Value: next}})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update likes for %s: %w", id, err)
	}

	return s.Get(ctx, id)
}
