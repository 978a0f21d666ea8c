// internal/models/registration_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRowOrder(t *testing.T) {
	req := &RegistrationRequest{
		CompanyNameEn: "Levant Trading Co",
		CompanyNameAr: "شركة بلاد الشام التجارية",
		Country:       "Jordan",
		City:          "Amman",
		Phone:         "+96261234567",
		Email:         "info@levanttrading.example",
		ContactName:   "Rami Haddad",
		Notes:         "Interested in the dermaline line",
		AgreeTerms:    true,
	}

	submitted := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	row := req.Row(submitted)

	require.Len(t, row, 40)
	assert.Equal(t, "2026-03-14T09:30:00Z", row[0])
	assert.Equal(t, "Levant Trading Co", row[1])
	assert.Equal(t, "Jordan", row[4])
	assert.Equal(t, "Rami Haddad", row[31])
	assert.Equal(t, "Interested in the dermaline line", row[39])
}

func TestRegistrationRowTimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	submitted := time.Date(2026, 3, 14, 11, 30, 0, 0, loc)

	row := (&RegistrationRequest{}).Row(submitted)
	assert.Equal(t, "2026-03-14T09:30:00Z", row[0])
}
