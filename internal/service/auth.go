package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"faq-service/internal/config"
	"faq-service/internal/helper"
	"faq-service/internal/models"
	"faq-service/internal/store"
)

type AdminStore interface {
	CreateAdmin(ctx context.Context, email, passwordHash string) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByRefreshToken(ctx context.Context, token string) (*models.Admin, error)
	SetRefreshToken(ctx context.Context, adminID, token string) error
}

type AuthService struct {
	store  AdminStore
	tokens *config.TokenIssuer
	log    *slog.Logger
}

func NewAuthService(store AdminStore, tokens *config.TokenIssuer, log *slog.Logger) *AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &AuthService{store: store, tokens: tokens, log: log}
}

var errInvalidCredentials = helper.AuthError("Invalid email or password")

func normalizeCredentials(req models.CredentialsRequest) (string, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return "", "", helper.ValidationError("Email and password are required")
	}
	if len(req.Password) > helper.MaxPasswordBytes {
		return "", "", helper.ValidationError(fmt.Sprintf("Password must be at most %d bytes", helper.MaxPasswordBytes))
	}
	return email, req.Password, nil
}

// Register creates an admin and opens its first session.
func (s *AuthService) Register(ctx context.Context, req models.CredentialsRequest) (*models.Session, error) {
	email, password, err := normalizeCredentials(req)
	if err != nil {
		return nil, err
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	admin, err := s.store.CreateAdmin(ctx, email, hash)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return nil, helper.ConflictError("Admin already exists")
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("admin registered", "admin_id", admin.ID)
	return s.openSession(ctx, admin)
}

// Login verifies the credentials and rotates the admin's refresh token.
func (s *AuthService) Login(ctx context.Context, req models.CredentialsRequest) (*models.Session, error) {
	email, password, err := normalizeCredentials(req)
	if err != nil {
		return nil, err
	}

	admin, err := s.store.GetAdminByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := helper.ComparePassword(admin.Password, password)
	if err != nil {
		return nil, fmt.Errorf("comparing password: %w", err)
	}
	if !ok {
		return nil, errInvalidCredentials
	}

	return s.openSession(ctx, admin)
}

func (s *AuthService) openSession(ctx context.Context, admin *models.Admin) (*models.Session, error) {
	refresh, err := s.tokens.GenerateToken(admin.ID, config.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}
	access, err := s.tokens.GenerateToken(admin.ID, config.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	if err := s.store.SetRefreshToken(ctx, admin.ID, refresh); err != nil {
		return nil, err
	}

	return &models.Session{
		Admin:        models.ToAdminResponse(*admin),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// sessionAdmin resolves a refresh token to its admin. The token must carry
// a valid signature and still be the one stored for that admin.
func (s *AuthService) sessionAdmin(ctx context.Context, refreshToken string) (*models.Admin, error) {
	if refreshToken == "" {
		return nil, helper.AuthError("Refresh token is required")
	}

	claims, err := s.tokens.ValidateToken(refreshToken, config.RefreshToken)
	if err != nil {
		return nil, helper.AuthError("Invalid refresh token")
	}

	admin, err := s.store.GetAdminByRefreshToken(ctx, refreshToken)
	if errors.Is(err, store.ErrNotFound) {
		return nil, helper.AuthError("Invalid refresh token")
	}
	if err != nil {
		return nil, err
	}
	if admin.ID != claims.AdminID {
		return nil, helper.AuthError("Invalid refresh token")
	}
	return admin, nil
}

// Refresh issues a new access token; the refresh token is left unchanged.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	admin, err := s.sessionAdmin(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	access, err := s.tokens.GenerateToken(admin.ID, config.AccessToken)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return access, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	admin, err := s.sessionAdmin(ctx, refreshToken)
	if err != nil {
		return err
	}
	if err := s.store.SetRefreshToken(ctx, admin.ID, ""); err != nil {
		return err
	}
	s.log.Info("admin logged out", "admin_id", admin.ID)
	return nil
}

// Authenticate checks an access token and returns the admin id it carries.
func (s *AuthService) Authenticate(accessToken string) (string, error) {
	if accessToken == "" {
		return "", helper.AuthError("Access token is required")
	}
	claims, err := s.tokens.ValidateToken(accessToken, config.AccessToken)
	if err != nil {
		return "", helper.AuthError("Invalid or expired access token")
	}
	return claims.AdminID, nil
}

// TokenTTLSeconds is the cookie lifetime for the given token kind.
func (s *AuthService) TokenTTLSeconds(kind config.TokenKind) int {
	return int(s.tokens.TTL(kind).Seconds())
}
