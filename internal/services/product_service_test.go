// internal/services/product_service_test.go
package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubingroup/rubin-backend/internal/models"
	"github.com/rubingroup/rubin-backend/internal/store"
)

// memStore is an in-memory ProductStore with the same contract as the
// hosted document store: partial field updates, slug lookup, and a
// transactional like counter clamped at zero.
type memStore struct {
	mu       sync.Mutex
	seq      int
	products map[string]models.Product
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]models.Product)}
}

func (m *memStore) List(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.Slug == slug {
			out := p
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	stored := *p
	stored.ID = fmt.Sprintf("doc-%d", m.seq)
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.products[stored.ID] = stored
	return &stored, nil
}

func (m *memStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	for k, v := range fields {
		switch k {
		case "name_en":
			p.NameEn = v.(string)
		case "name_ar":
			p.NameAr = v.(string)
		case "description_en":
			p.DescriptionEn = v.(string)
		case "description_ar":
			p.DescriptionAr = v.(string)
		case "brand":
			p.Brand = v.(string)
		case "slug":
			p.Slug = v.(string)
		case "image":
			p.Image = v.(string)
		case "best_selling":
			p.BestSelling = v.(bool)
		case "featured":
			p.Featured = v.(bool)
		case "new_arrival":
			p.NewArrival = v.(bool)
		case "in_stock":
			p.InStock = v.(bool)
		case "disabled":
			p.Disabled = v.(bool)
		}
	}
	p.UpdatedAt = time.Now().UTC()
	m.products[id] = p
	return &p, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memStore) IncrementLikes(ctx context.Context, id string, delta int64) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	next := p.Likes + delta
	if next < 0 {
		next = 0
	}
	p.Likes = next
	p.UpdatedAt = time.Now().UTC()
	m.products[id] = p
	return &p, nil
}

func validCreateRequest() *CreateProductRequest {
	return &CreateProductRequest{
		NameEn:        "Hydra Gel A",
		NameAr:        "جل هيدرا أ",
		DescriptionEn: "Moisturizing gel for daily use",
		DescriptionAr: "جل مرطب للاستخدام اليومي",
		Brand:         "rubin",
		InStock:       true,
	}
}

func TestCreateProductDerivesSlug(t *testing.T) {
	svc := NewProductService(newMemStore())

	product, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "hydra-gel-a", product.Slug)
	assert.True(t, product.InStock)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCreateProductRejectsDuplicateSlug(t *testing.T) {
	svc := NewProductService(newMemStore())

	_, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreateProductRejectsUnknownBrand(t *testing.T) {
	svc := NewProductService(newMemStore())

	req := validCreateRequest()
	req.Brand = "acme"

	_, err := svc.CreateProduct(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidBrand)
}

func TestCreateProductRejectsUnderivableSlug(t *testing.T) {
	svc := NewProductService(newMemStore())

	// A name with no ASCII alphanumerics derives an empty slug.
	req := validCreateRequest()
	req.NameEn = "كريم مرطب"

	_, err := svc.CreateProduct(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmptySlug)

	// An explicit slug makes the same name acceptable.
	req.Slug = "moisturizing-cream"
	product, err := svc.CreateProduct(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "moisturizing-cream", product.Slug)
}

func TestUpdateProductRejectsEmptySlug(t *testing.T) {
	svc := NewProductService(newMemStore())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateProduct(context.Background(), created.ID, &UpdateProductRequest{Slug: &empty})
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestCreateProductRejectsMissingBilingualName(t *testing.T) {
	svc := NewProductService(newMemStore())

	req := validCreateRequest()
	req.NameAr = ""

	_, err := svc.CreateProduct(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateProductWritesOnlySuppliedFields(t *testing.T) {
	svc := NewProductService(newMemStore())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	newName := "جل هيدرا المطور"
	updated, err := svc.UpdateProduct(context.Background(), created.ID, &UpdateProductRequest{
		NameAr: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.NameAr)
	assert.Equal(t, created.NameEn, updated.NameEn)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Brand, updated.Brand)
}

func TestUpdateProductAllowsKeepingOwnSlug(t *testing.T) {
	svc := NewProductService(newMemStore())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	slug := created.Slug
	updated, err := svc.UpdateProduct(context.Background(), created.ID, &UpdateProductRequest{
		Slug: &slug,
	})
	require.NoError(t, err)
	assert.Equal(t, slug, updated.Slug)
}

func TestUpdateProductRejectsSlugHeldByAnother(t *testing.T) {
	svc := NewProductService(newMemStore())

	first, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.NameEn = "Hydra Gel B"
	other, err := svc.CreateProduct(context.Background(), second)
	require.NoError(t, err)

	taken := first.Slug
	_, err = svc.UpdateProduct(context.Background(), other.ID, &UpdateProductRequest{
		Slug: &taken,
	})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestToggleFlagRoundTrip(t *testing.T) {
	svc := NewProductService(newMemStore())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.False(t, created.Featured)

	toggled, err := svc.ToggleFlag(context.Background(), created.ID, "featured")
	require.NoError(t, err)
	assert.True(t, toggled.Featured)

	back, err := svc.ToggleFlag(context.Background(), created.ID, "featured")
	require.NoError(t, err)
	assert.False(t, back.Featured)
}

func TestToggleFlagRejectsUnknownFlag(t *testing.T) {
	svc := NewProductService(newMemStore())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.ToggleFlag(context.Background(), created.ID, "discounted")
	assert.ErrorIs(t, err, ErrUnknownFlag)
}

func TestLikeAndUnlike(t *testing.T) {
	svc := NewProductService(newMemStore())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	liked, err := svc.Like(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked.Likes)

	liked, err = svc.Like(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), liked.Likes)

	unliked, err := svc.Unlike(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unliked.Likes)
}

func TestUnlikeClampsAtZero(t *testing.T) {
	svc := NewProductService(newMemStore())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	unliked, err := svc.Unlike(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unliked.Likes)
}

func TestDeleteProductRemovesRecord(t *testing.T) {
	st := newMemStore()
	svc := NewProductService(st)

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))

	_, err = svc.GetProduct(context.Background(), created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = svc.DeleteProduct(context.Background(), created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hydra Gel A":        "hydra-gel-a",
		"  Pure & Simple  ":  "pure-simple",
		"SPF 50+ Sunscreen":  "spf-50-sunscreen",
		"Vitamin-C  Serum!!": "vitamin-c-serum",
	}

	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}
