package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "event-voting-backend"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email                string `json:"email" example:"admin@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the admin login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after a successful admin login
type LoginResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Email     string `json:"email" example:"admin@example.com"`
	ExpiresIn int64  `json:"expiresIn" example:"43200"`
}

// AuthService issues and validates admin tokens
type AuthService struct {
	config    *AuthConfig
	verifiers []CredentialVerifier
	now       func() time.Time
}

// NewAuthService creates a new authentication service. Static users are
// checked first, then LDAP when configured.
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	var verifiers []CredentialVerifier
	if len(config.AdminUsers) > 0 {
		verifiers = append(verifiers, NewStaticVerifier(config.AdminUsers))
	}
	if config.LDAP != nil {
		verifiers = append(verifiers, NewLDAPVerifier(config.LDAP))
	}

	return &AuthService{
		config:    config,
		verifiers: verifiers,
		now:       time.Now,
	}, nil
}

// Login checks the credentials and issues a token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("", "email and password are required")
	}

	if err := s.verify(ctx, email, password); err != nil {
		return nil, err
	}

	token, err := s.GenerateJWT(email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		Email:     email,
		ExpiresIn: int64(s.config.TokenTTL / time.Second),
	}, nil
}

// verify tries each source in order. A source failure is logged and the next one is tried.
func (s *AuthService) verify(ctx context.Context, email, password string) error {
	for _, v := range s.verifiers {
		err := v.Verify(ctx, email, password)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.WithContext(ctx).WithError(err).Warn("Credential source unavailable")
		}
	}
	return apperrors.ErrInvalidCredentials
}

// GenerateJWT creates a signed token for the admin
func (s *AuthService) GenerateJWT(email string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
