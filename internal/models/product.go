// internal/models/product.go
package models

import "time"

// Product is a catalog record stored in the products collection of the
// document store. The document ID is kept out of the stored fields and
// filled in from the document reference on read.
type Product struct {
	ID            string `json:"id" firestore:"-"`
	NameEn        string `json:"name_en" firestore:"name_en"`
	NameAr        string `json:"name_ar" firestore:"name_ar"`
	DescriptionEn string `json:"description_en" firestore:"description_en"`
	DescriptionAr string `json:"description_ar" firestore:"description_ar"`
	Brand         string `json:"brand" firestore:"brand"`
	Slug          string `json:"slug" firestore:"slug"`
	Image         string `json:"image" firestore:"image"`

	// Merchandising flags. Independent booleans, no mutual exclusion.
	BestSelling bool `json:"best_selling" firestore:"best_selling"`
	Featured    bool `json:"featured" firestore:"featured"`
	NewArrival  bool `json:"new_arrival" firestore:"new_arrival"`
	InStock     bool `json:"in_stock" firestore:"in_stock"`
	Disabled    bool `json:"disabled" firestore:"disabled"`

	Likes int64 `json:"likes" firestore:"likes"`

	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}

// ProductFlag names one of the toggleable merchandising booleans.
type ProductFlag string

const (
	FlagBestSelling ProductFlag = "best_selling"
	FlagFeatured    ProductFlag = "featured"
	FlagNewArrival  ProductFlag = "new_arrival"
	FlagInStock     ProductFlag = "in_stock"
	FlagDisabled    ProductFlag = "disabled"
)

// ProductFlags lists every toggleable flag.
var ProductFlags = []ProductFlag{FlagBestSelling, FlagFeatured, FlagNewArrival, FlagInStock, FlagDisabled}

// IsValidFlag reports whether name is a known merchandising flag.
func IsValidFlag(name string) bool {
	for _, f := range ProductFlags {
		if string(f) == name {
			return true
		}
	}
	return false
}

// FlagValue returns the current value of the named flag.
func (p *Product) FlagValue(flag ProductFlag) bool {
	switch flag {
	case FlagBestSelling:
		return p.BestSelling
	case FlagFeatured:
		return p.Featured
	case FlagNewArrival:
		return p.NewArrival
	case FlagInStock:
		return p.InStock
	case FlagDisabled:
		return p.Disabled
	}
	return false
}

// SetFlag sets the named flag to value.
func (p *Product) SetFlag(flag ProductFlag, value bool) {
	switch flag {
	case FlagBestSelling:
		p.BestSelling = value
	case FlagFeatured:
		p.Featured = value
	case FlagNewArrival:
		p.NewArrival = value
	case FlagInStock:
		p.InStock = value
	case FlagDisabled:
		p.Disabled = value
	}
}

// Name returns the display name for the given language.
func (p *Product) Name(lang string) string {
	if lang == "ar" {
		return p.NameAr
	}
	return p.NameEn
}
