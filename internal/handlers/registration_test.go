// internal/handlers/registration_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubingroup/rubin-backend/internal/models"
)

// captureSink records appended registrations instead of writing to the
// spreadsheet.
type captureSink struct {
	rows []*models.RegistrationRequest
	err  error
}

func (s *captureSink) AppendRegistration(ctx context.Context, req *models.RegistrationRequest) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, req)
	return nil
}

func registrationRouter(sink *captureSink) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", NewRegistrationHandler(sink).Register)
	return r
}

func validRegistrationPayload() map[string]interface{} {
	return map[string]interface{}{
		"company_name_en": "Levant Trading Co",
		"country":         "Jordan",
		"city":            "Amman",
		"phone":           "+96261234567",
		"email":           "info@levanttrading.example",
		"contact_name":    "Rami Haddad",
		"agree_terms":     true,
	}
}

func postRegistration(t *testing.T, r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAppendsRow(t *testing.T) {
	sink := &captureSink{}
	w := postRegistration(t, registrationRouter(sink), validRegistrationPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, sink.rows, 1)
	assert.Equal(t, "Levant Trading Co", sink.rows[0].CompanyNameEn)
	assert.Equal(t, "Rami Haddad", sink.rows[0].ContactName)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
}

func TestRegisterWithoutConsentNeverTouchesSink(t *testing.T) {
	sink := &captureSink{}
	payload := validRegistrationPayload()
	payload["agree_terms"] = false

	w := postRegistration(t, registrationRouter(sink), payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sink.rows)
}

func TestRegisterValidatesRequiredFields(t *testing.T) {
	sink := &captureSink{}
	payload := validRegistrationPayload()
	delete(payload, "email")

	w := postRegistration(t, registrationRouter(sink), payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sink.rows)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response["success"].(bool))
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	sink := &captureSink{}
	payload := validRegistrationPayload()
	payload["email"] = "not-an-email"

	w := postRegistration(t, registrationRouter(sink), payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sink.rows)
}

func TestRegisterSinkFailure(t *testing.T) {
	sink := &captureSink{err: errors.New("quota exceeded")}
	w := postRegistration(t, registrationRouter(sink), validRegistrationPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
