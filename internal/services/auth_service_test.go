// internal/services/auth_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubingroup/rubin-backend/internal/config"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return f.token, f.err
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", SessionTTL: 1},
	}
}

func TestLoginMintsSessionToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")

	verifier := &fakeVerifier{token: &auth.Token{
		UID:    "uid-admin",
		Claims: map[string]interface{}{"email": "admin@rubin.example", "admin": true},
	}}
	svc := NewAuthServiceWithVerifier(verifier, authTestConfig())

	result, err := svc.Login(context.Background(), "provider-id-token")
	require.NoError(t, err)

	assert.Equal(t, "uid-admin", result.UID)
	assert.Equal(t, "admin@rubin.example", result.Email)
	assert.True(t, result.Admin)

	claims, err := utils.ValidateSessionToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "uid-admin", claims.UID)
	assert.True(t, claims.Admin)
}

func TestLoginWithoutAdminClaim(t *testing.T) {
	utils.SetJWTSecret("test-secret")

	verifier := &fakeVerifier{token: &auth.Token{
		UID:    "uid-visitor",
		Claims: map[string]interface{}{"email": "visitor@example.com"},
	}}
	svc := NewAuthServiceWithVerifier(verifier, authTestConfig())

	result, err := svc.Login(context.Background(), "provider-id-token")
	require.NoError(t, err)
	assert.False(t, result.Admin)

	claims, err := utils.ValidateSessionToken(result.Token)
	require.NoError(t, err)
	assert.False(t, claims.Admin)
}

func TestLoginRejectsInvalidProviderToken(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("token revoked")}
	svc := NewAuthServiceWithVerifier(verifier, authTestConfig())

	_, err := svc.Login(context.Background(), "stale-token")
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	verifier := &fakeVerifier{token: &auth.Token{
		UID:    "uid-admin",
		Claims: map[string]interface{}{"admin": true},
	}}
	svc := NewAuthServiceWithVerifier(verifier, authTestConfig())

	admin, err := svc.IsAdmin(context.Background(), "provider-id-token")
	require.NoError(t, err)
	assert.True(t, admin)
}
