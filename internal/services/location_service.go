// internal/services/location_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rubingroup/rubin-backend/internal/models"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

var ErrLocationNotFound = errors.New("location not found")

// LocationService owns the facility directory stored in the relational
// store. Admin CRUD plus the public active-only listing for the map.
type LocationService struct {
	db *gorm.DB
}

type CreateLocationRequest struct {
	NameEn    string  `json:"name_en" validate:"required,max=255"`
	NameAr    string  `json:"name_ar" validate:"required,max=255"`
	Type      string  `json:"type" validate:"max=100"`
	Brand     string  `json:"brand" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Address   string  `json:"address" validate:"max=512"`
	Phone     string  `json:"phone" validate:"max=50"`
	WhatsApp  string  `json:"whatsapp" validate:"max=50"`
	Instagram string  `json:"instagram" validate:"max=255"`
	Facebook  string  `json:"facebook" validate:"max=255"`
	Website   string  `json:"website" validate:"max=255"`
	Active    *bool   `json:"active"`
}

type UpdateLocationRequest struct {
	NameEn    *string  `json:"name_en,omitempty" validate:"omitempty,min=1,max=255"`
	NameAr    *string  `json:"name_ar,omitempty" validate:"omitempty,min=1,max=255"`
	Type      *string  `json:"type,omitempty" validate:"omitempty,max=100"`
	Brand     *string  `json:"brand,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,max=512"`
	Phone     *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	WhatsApp  *string  `json:"whatsapp,omitempty" validate:"omitempty,max=50"`
	Instagram *string  `json:"instagram,omitempty" validate:"omitempty,max=255"`
	Facebook  *string  `json:"facebook,omitempty" validate:"omitempty,max=255"`
	Website   *string  `json:"website,omitempty" validate:"omitempty,max=255"`
	Active    *bool    `json:"active,omitempty"`
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

// ListPublic returns only active locations; the active flag gates map
// visibility on the storefront.
func (s *LocationService) ListPublic(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("created_at DESC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *LocationService) ListAll(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// newLocationFromRequest validates the payload and builds the row to be
// stored. Brand metadata is copied at write time; later registry edits
// are not propagated to existing rows.
func newLocationFromRequest(req *CreateLocationRequest) (*models.Location, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brand, ok := models.BrandByKey(req.Brand)
	if !ok {
		return nil, ErrInvalidBrand
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &models.Location{
		NameEn:     req.NameEn,
		NameAr:     req.NameAr,
		Type:       req.Type,
		Brand:      brand.Key,
		BrandName:  brand.NameEn,
		BrandColor: brand.Color,
		BrandLogo:  brand.Logo,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    req.Address,
		Phone:      req.Phone,
		WhatsApp:   req.WhatsApp,
		Instagram:  req.Instagram,
		Facebook:   req.Facebook,
		Website:    req.Website,
		Active:     active,
	}, nil
}

func (s *LocationService) CreateLocation(ctx context.Context, req *CreateLocationRequest) (*models.Location, error) {
	location, err := newLocationFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(location).Error; err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

// locationUpdates validates the partial payload and translates the
// non-nil fields into a column update map. Brand changes re-denormalize
// the registry metadata alongside the key.
func locationUpdates(req *UpdateLocationRequest) (map[string]interface{}, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := make(map[string]interface{})
	if req.NameEn != nil {
		updates["name_en"] = *req.NameEn
	}
	if req.NameAr != nil {
		updates["name_ar"] = *req.NameAr
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Brand != nil {
		brand, ok := models.BrandByKey(*req.Brand)
		if !ok {
			return nil, ErrInvalidBrand
		}
		updates["brand"] = brand.Key
		updates["brand_name"] = brand.NameEn
		updates["brand_color"] = brand.Color
		updates["brand_logo"] = brand.Logo
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.WhatsApp != nil {
		updates["whats_app"] = *req.WhatsApp
	}
	if req.Instagram != nil {
		updates["instagram"] = *req.Instagram
	}
	if req.Facebook != nil {
		updates["facebook"] = *req.Facebook
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	return updates, nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, id uint, req *UpdateLocationRequest) (*models.Location, error) {
	updates, err := locationUpdates(req)
	if err != nil {
		return nil, err
	}

	var location models.Location
	if err := s.db.WithContext(ctx).First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&location).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update location: %w", err)
		}
		// Re-read so the caller gets the row as stored.
		if err := s.db.WithContext(ctx).First(&location, id).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
	}

	return &location, nil
}

func (s *LocationService) DeleteLocation(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Location{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete location: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}
