// internal/services/location_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLocationRequest() *CreateLocationRequest {
	return &CreateLocationRequest{
		NameEn:    "Damascus Flagship Store",
		NameAr:    "المتجر الرئيسي في دمشق",
		Type:      "store",
		Brand:     "lumiera",
		Latitude:  33.5,
		Longitude: 36.3,
	}
}

func TestLocationCoordinateBounds(t *testing.T) {
	cases := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"damascus", 33.5, 36.3, false},
		{"equator meridian", 0, 0, false},
		{"latitude north pole", 90, 0, false},
		{"latitude too far north", 91, 36.3, true},
		{"latitude too far south", -91, 36.3, true},
		{"longitude too far east", 33.5, 181, true},
		{"longitude too far west", 33.5, -181, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validLocationRequest()
			req.Latitude = tc.latitude
			req.Longitude = tc.longitude

			_, err := newLocationFromRequest(req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocationUpdateCoordinateBounds(t *testing.T) {
	badLat := 91.0
	_, err := locationUpdates(&UpdateLocationRequest{Latitude: &badLat})
	assert.Error(t, err)

	badLng := -181.0
	_, err = locationUpdates(&UpdateLocationRequest{Longitude: &badLng})
	assert.Error(t, err)

	goodLat, goodLng := 33.5, 36.3
	updates, err := locationUpdates(&UpdateLocationRequest{Latitude: &goodLat, Longitude: &goodLng})
	require.NoError(t, err)
	assert.Equal(t, 33.5, updates["latitude"])
	assert.Equal(t, 36.3, updates["longitude"])
}

func TestNewLocationDenormalizesBrandMetadata(t *testing.T) {
	location, err := newLocationFromRequest(validLocationRequest())
	require.NoError(t, err)

	assert.Equal(t, "lumiera", location.Brand)
	assert.Equal(t, "Lumiera", location.BrandName)
	assert.Equal(t, "#C9A24B", location.BrandColor)
	assert.Equal(t, "/brands/lumiera.png", location.BrandLogo)
}

func TestNewLocationDefaultsToActive(t *testing.T) {
	location, err := newLocationFromRequest(validLocationRequest())
	require.NoError(t, err)
	assert.True(t, location.Active)

	inactive := false
	req := validLocationRequest()
	req.Active = &inactive

	location, err = newLocationFromRequest(req)
	require.NoError(t, err)
	assert.False(t, location.Active)
}

func TestNewLocationRejectsUnknownBrand(t *testing.T) {
	req := validLocationRequest()
	req.Brand = "acme"

	_, err := newLocationFromRequest(req)
	assert.ErrorIs(t, err, ErrInvalidBrand)
}

func TestNewLocationRequiresBilingualNames(t *testing.T) {
	req := validLocationRequest()
	req.NameAr = ""

	_, err := newLocationFromRequest(req)
	assert.Error(t, err)
}

func TestLocationUpdatesBrandChangeRefreshesMetadata(t *testing.T) {
	brand := "dermaline"
	updates, err := locationUpdates(&UpdateLocationRequest{Brand: &brand})
	require.NoError(t, err)

	assert.Equal(t, "dermaline", updates["brand"])
	assert.Equal(t, "Dermaline", updates["brand_name"])
	assert.Equal(t, "#2E6F6C", updates["brand_color"])
	assert.Equal(t, "/brands/dermaline.png", updates["brand_logo"])
}

func TestLocationUpdatesRejectsUnknownBrand(t *testing.T) {
	brand := "acme"
	_, err := locationUpdates(&UpdateLocationRequest{Brand: &brand})
	assert.ErrorIs(t, err, ErrInvalidBrand)
}

func TestLocationUpdatesTouchesOnlySuppliedColumns(t *testing.T) {
	updates, err := locationUpdates(&UpdateLocationRequest{})
	require.NoError(t, err)
	assert.Empty(t, updates)

	whatsapp := "+963999000111"
	updates, err = locationUpdates(&UpdateLocationRequest{WhatsApp: &whatsapp})
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, whatsapp, updates["whats_app"])
}
