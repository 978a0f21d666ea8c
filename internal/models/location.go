// internal/models/location.go
package models

import "time"

// Location is a facility or point of sale shown on the storefront map.
// Brand display fields are denormalized from the brand registry at write
// time, so later registry edits do not rewrite existing rows.
type Location struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	NameEn string `json:"name_en" gorm:"size:255;not null"`
	NameAr string `json:"name_ar" gorm:"size:255;not null"`
	Type   string `json:"type" gorm:"size:100"`

	Brand      string `json:"brand" gorm:"size:50;index"`
	BrandName  string `json:"brand_name" gorm:"size:255"`
	BrandColor string `json:"brand_color" gorm:"size:20"`
	BrandLogo  string `json:"brand_logo" gorm:"size:512"`

	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`

	// Contact and social fields, all optional free text.
	Address   string `json:"address" gorm:"size:512"`
	Phone     string `json:"phone" gorm:"size:50"`
	WhatsApp  string `json:"whatsapp" gorm:"size:50"`
	Instagram string `json:"instagram" gorm:"size:255"`
	Facebook  string `json:"facebook" gorm:"size:255"`
	Website   string `json:"website" gorm:"size:255"`

	// Active gates public map visibility.
	Active bool `json:"active" gorm:"default:true;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
