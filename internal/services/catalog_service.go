// internal/services/catalog_service.go
package services

import (
	"context"
	"sort"
	"strings"

	"github.com/rubingroup/rubin-backend/internal/models"
	"github.com/rubingroup/rubin-backend/internal/store"
)

// CatalogService is the public read path: fetch the whole collection,
// drop disabled records, filter, sort. No pagination, no server-side
// caching — the store is the single source of truth.
type CatalogService struct {
	products store.ProductStore
}

func NewCatalogService(products store.ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// ListCatalog returns the storefront view of the catalog. brand is a
// registry key or "all"; query matches the active language's name field
// case-insensitively.
func (s *CatalogService) ListCatalog(ctx context.Context, brand, query, lang string) ([]models.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]models.Product, 0, len(all))
	for _, p := range all {
		if !p.Disabled {
			visible = append(visible, p)
		}
	}

	filtered := FilterProducts(visible, brand, query, lang)
	SortCatalog(filtered)
	return filtered, nil
}

// GetBySlug resolves a product detail page. Slugs are unique, enforced at
// write time, so the first match is the only match.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p.Disabled {
		return nil, store.ErrNotFound
	}
	return p, nil
}

// FilterProducts applies the storefront predicate: brand equality (or
// "all") AND case-insensitive substring match of query against the name
// in the active language. The result is always a subset of list.
func FilterProducts(list []models.Product, brand, query, lang string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Product, 0, len(list))
	for _, p := range list {
		if brand != "" && brand != models.BrandAll && p.Brand != brand {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name(lang)), query) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// SortCatalog orders the list in place: stable grouping by brand in
// registry order, and within a brand best-selling records first, then by
// descending like count. The ordering is recomputed on every request;
// there is no persisted rank.
func SortCatalog(list []models.Product) {
	sort.SliceStable(list, func(i, j int) bool {
		bi, bj := models.BrandIndex(list[i].Brand), models.BrandIndex(list[j].Brand)
		if bi != bj {
			return bi < bj
		}
		if list[i].BestSelling != list[j].BestSelling {
			return list[i].BestSelling
		}
		return list[i].Likes > list[j].Likes
	})
}
