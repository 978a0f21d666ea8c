// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/rubingroup/rubin-backend/internal/config"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

// ErrNotAdmin is returned when a verified identity lacks the admin claim
// but the operation requires it.
var ErrNotAdmin = errors.New("account is not an admin")

// TokenVerifier is the identity-provider boundary: verify an ID token and
// return its decoded claims.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthService delegates sign-in to Firebase Auth. The only thing this
// application reads from the provider is the uid, the email, and the
// boolean admin custom claim; after verification it mints its own session
// token so the provider is contacted once per login.
type AuthService struct {
	verifier TokenVerifier
	cfg      *config.Config
}

type LoginResult struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

func NewAuthService(ctx context.Context, cfg *config.Config) (*AuthService, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.CredentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	return &AuthService{verifier: client, cfg: cfg}, nil
}

// NewAuthServiceWithVerifier wires a custom verifier. Used by tests.
func NewAuthServiceWithVerifier(verifier TokenVerifier, cfg *config.Config) *AuthService {
	return &AuthService{verifier: verifier, cfg: cfg}
}

// Login verifies the provider ID token and exchanges it for a session
// token carrying the admin flag.
func (s *AuthService) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid ID token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	admin, _ := token.Claims["admin"].(bool)

	sessionToken, err := utils.GenerateSessionToken(token.UID, email, admin, s.cfg.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	return &LoginResult{
		Token: sessionToken,
		UID:   token.UID,
		Email: email,
		Admin: admin,
	}, nil
}

// IsAdmin reports whether the given ID token belongs to an admin account.
// Backs the pre-login verify-admin route, which gates the admin panel
// before any session is minted.
func (s *AuthService) IsAdmin(ctx context.Context, idToken string) (bool, error) {
	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return false, fmt.Errorf("invalid ID token: %w", err)
	}

	admin, _ := token.Claims["admin"].(bool)
	return admin, nil
}
