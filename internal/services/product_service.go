// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rubingroup/rubin-backend/internal/models"
	"github.com/rubingroup/rubin-backend/internal/store"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

var (
	ErrSlugTaken    = errors.New("slug already in use")
	ErrEmptySlug    = errors.New("slug cannot be empty")
	ErrInvalidBrand = errors.New("unknown brand")
	ErrUnknownFlag  = errors.New("unknown product flag")
)

// ProductService owns the admin mutation contract for the catalog. Every
// mutation returns the record as stored, so clients patch local state from
// the response instead of reloading the whole collection.
type ProductService struct {
	store store.ProductStore
}

type CreateProductRequest struct {
	NameEn        string `json:"name_en" validate:"required,max=255"`
	NameAr        string `json:"name_ar" validate:"required,max=255"`
	DescriptionEn string `json:"description_en" validate:"required"`
	DescriptionAr string `json:"description_ar" validate:"required"`
	Brand         string `json:"brand" validate:"required"`
	Slug          string `json:"slug" validate:"omitempty,slug,max=255"`
	Image         string `json:"image" validate:"omitempty,url,max=1024"`
	BestSelling   bool   `json:"best_selling"`
	Featured      bool   `json:"featured"`
	NewArrival    bool   `json:"new_arrival"`
	InStock       bool   `json:"in_stock"`
}

// UpdateProductRequest is a partial replace: only non-nil fields are
// written, everything else stays untouched.
type UpdateProductRequest struct {
	NameEn        *string `json:"name_en,omitempty" validate:"omitempty,min=1,max=255"`
	NameAr        *string `json:"name_ar,omitempty" validate:"omitempty,min=1,max=255"`
	DescriptionEn *string `json:"description_en,omitempty" validate:"omitempty,min=1"`
	DescriptionAr *string `json:"description_ar,omitempty" validate:"omitempty,min=1"`
	Brand         *string `json:"brand,omitempty"`
	Slug          *string `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	Image         *string `json:"image,omitempty" validate:"omitempty,url,max=1024"`
	BestSelling   *bool   `json:"best_selling,omitempty"`
	Featured      *bool   `json:"featured,omitempty"`
	NewArrival    *bool   `json:"new_arrival,omitempty"`
	InStock       *bool   `json:"in_stock,omitempty"`
	Disabled      *bool   `json:"disabled,omitempty"`
}

func NewProductService(productStore store.ProductStore) *ProductService {
	return &ProductService{store: productStore}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !models.IsValidBrand(req.Brand) {
		return nil, ErrInvalidBrand
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.NameEn)
	}
	// A name with no ASCII alphanumerics derives nothing routable.
	if slug == "" {
		return nil, ErrEmptySlug
	}
	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}

	product := &models.Product{
		NameEn:        req.NameEn,
		NameAr:        req.NameAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Brand:         req.Brand,
		Slug:          slug,
		Image:         req.Image,
		BestSelling:   req.BestSelling,
		Featured:      req.Featured,
		NewArrival:    req.NewArrival,
		InStock:       req.InStock,
	}

	return s.store.Create(ctx, product)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.store.Get(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.List(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	fields := make(map[string]interface{})
	if req.NameEn != nil {
		fields["name_en"] = *req.NameEn
	}
	if req.NameAr != nil {
		fields["name_ar"] = *req.NameAr
	}
	if req.DescriptionEn != nil {
		fields["description_en"] = *req.DescriptionEn
	}
	if req.DescriptionAr != nil {
		fields["description_ar"] = *req.DescriptionAr
	}
	if req.Brand != nil {
		if !models.IsValidBrand(*req.Brand) {
			return nil, ErrInvalidBrand
		}
		fields["brand"] = *req.Brand
	}
	if req.Slug != nil {
		if *req.Slug == "" {
			return nil, ErrEmptySlug
		}
		if err := s.ensureSlugFree(ctx, *req.Slug, id); err != nil {
			return nil, err
		}
		fields["slug"] = *req.Slug
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.BestSelling != nil {
		fields["best_selling"] = *req.BestSelling
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.NewArrival != nil {
		fields["new_arrival"] = *req.NewArrival
	}
	if req.InStock != nil {
		fields["in_stock"] = *req.InStock
	}
	if req.Disabled != nil {
		fields["disabled"] = *req.Disabled
	}

	if len(fields) == 0 {
		return s.store.Get(ctx, id)
	}

	return s.store.Update(ctx, id, fields)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// ToggleFlag negates one merchandising flag: read current record, write
// the negation, return the stored result. The client patches local state
// only after this acknowledgment.
func (s *ProductService) ToggleFlag(ctx context.Context, id, flagName string) (*models.Product, error) {
	if !models.IsValidFlag(flagName) {
		return nil, ErrUnknownFlag
	}
	flag := models.ProductFlag(flagName)

	product, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.store.Update(ctx, id, map[string]interface{}{
		flagName: !product.FlagValue(flag),
	})
}

// Like and Unlike share the one atomic counter path. Unlike never drives
// the counter below zero.
func (s *ProductService) Like(ctx context.Context, id string) (*models.Product, error) {
	return s.store.IncrementLikes(ctx, id, 1)
}

func (s *ProductService) Unlike(ctx context.Context, id string) (*models.Product, error) {
	return s.store.IncrementLikes(ctx, id, -1)
}

// ensureSlugFree rejects a slug already held by a different product.
// Detail routing keys on the slug, so two records must never share one.
func (s *ProductService) ensureSlugFree(ctx context.Context, slug, selfID string) error {
	existing, err := s.store.GetBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ErrSlugTaken
	}
	return nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from the English name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
