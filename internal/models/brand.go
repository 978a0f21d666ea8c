// internal/models/brand.go
package models

// Brand is one entry of the fixed house-brand set. The set is compiled in:
// brands change with packaging redesigns, not at runtime.
type Brand struct {
	Key    string `json:"key"`
	NameEn string `json:"name_en"`
	NameAr string `json:"name_ar"`
	Color  string `json:"color"`
	Logo   string `json:"logo"`
}

// BrandAll is the catalog filter value matching every brand.
const BrandAll = "all"

// Brands in storefront display order. Catalog sorting groups products in
// this order.
var Brands = []Brand{
	{Key: "rubin", NameEn: "Rubin", NameAr: "روبين", Color: "#8B1E3F", Logo: "/brands/rubin.png"},
	{Key: "lumiera", NameEn: "Lumiera", NameAr: "لوميرا", Color: "#C9A24B", Logo: "/brands/lumiera.png"},
	{Key: "dermaline", NameEn: "Dermaline", NameAr: "ديرمالاين", Color: "#2E6F6C", Logo: "/brands/dermaline.png"},
	{Key: "purea", NameEn: "Purea", NameAr: "بيوريا", Color: "#4A6FA5", Logo: "/brands/purea.png"},
}

// BrandByKey looks a brand up by its key.
func BrandByKey(key string) (Brand, bool) {
	for _, b := range Brands {
		if b.Key == key {
			return b, true
		}
	}
	return Brand{}, false
}

// IsValidBrand reports whether key names a house brand.
func IsValidBrand(key string) bool {
	_, ok := BrandByKey(key)
	return ok
}

// BrandIndex returns the display-order position of key, or len(Brands) for
// unknown keys so they sort last.
func BrandIndex(key string) int {
	for i, b := range Brands {
		if b.Key == key {
			return i
		}
	}
	return len(Brands)
}
