package config

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenKind string

const (
	AccessToken  TokenKind = "accessToken"
	RefreshToken TokenKind = "refreshToken"
)

var ErrUnknownTokenKind = errors.New("unknown token kind")

type AdminClaims struct {
	AdminID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies admin session tokens. Access and refresh
// tokens use separate secrets so one can never stand in for the other.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenIssuer(cfg *Config) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		now:           time.Now,
	}
}

func (i *TokenIssuer) TTL(kind TokenKind) time.Duration {
	if kind == RefreshToken {
		return i.refreshTTL
	}
	return i.accessTTL
}

func (i *TokenIssuer) secret(kind TokenKind) ([]byte, error) {
	switch kind {
	case AccessToken:
		return i.accessSecret, nil
	case RefreshToken:
		return i.refreshSecret, nil
	}
	return nil, ErrUnknownTokenKind
}

func (i *TokenIssuer) GenerateToken(adminID string, kind TokenKind) (string, error) {
	secret, err := i.secret(kind)
	if err != nil {
		return "", err
	}

	now := i.now()
	claims := AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.TTL(kind))),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (i *TokenIssuer) ValidateToken(tokenString string, kind TokenKind) (*AdminClaims, error) {
	secret, err := i.secret(kind)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid && claims.AdminID != "" {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
