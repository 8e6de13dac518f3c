package auth

import (
	"fmt"
	"strings"
	"time"

	"event-voting-backend/internal/config"
	apperrors "event-voting-backend/internal/errors"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	AdminUsers map[string]string
	LDAP       *LDAPConfig
}

// LDAPConfig holds the directory used to check admin passwords
type LDAPConfig struct {
	Host               string
	Port               string
	BindDN             string
	BindPW             string
	BaseDN             string
	InsecureSkipVerify bool
	TimeoutSec         int
}

// NewAuthConfig builds the authentication configuration from the application config
func NewAuthConfig(cfg *config.Config) (*AuthConfig, error) {
	users, err := ParseAdminUsers(cfg.AdminUsers)
	if err != nil {
		return nil, err
	}

	authCfg := &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.JWTTTL,
		AdminUsers: users,
	}
	if cfg.LDAPEnabled() {
		authCfg.LDAP = &LDAPConfig{
			Host:               cfg.LDAPHost,
			Port:               cfg.LDAPPort,
			BindDN:             cfg.LDAPBindDN,
			BindPW:             cfg.LDAPBindPW,
			BaseDN:             cfg.LDAPBaseDN,
			InsecureSkipVerify: cfg.LDAPInsecureSkipVerify,
			TimeoutSec:         cfg.LDAPTimeoutSec,
		}
	}

	if err := authCfg.ValidateConfig(); err != nil {
		return nil, err
	}
	return authCfg, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.NewConfigurationError("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return apperrors.NewConfigurationError("token TTL must be positive")
	}
	if len(c.AdminUsers) == 0 && c.LDAP == nil {
		return apperrors.ErrNoAdminCredentials
	}
	if c.LDAP != nil && c.LDAP.BaseDN == "" {
		return apperrors.NewConfigurationError("LDAP_BASE_DN is required when LDAP_HOST is set")
	}
	return nil
}

// ParseAdminUsers parses "email:password" pairs separated by commas.
// Emails are matched case-insensitively.
func ParseAdminUsers(raw string) (map[string]string, error) {
	users := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		email, password, ok := strings.Cut(pair, ":")
		email = normalizeEmail(email)
		if !ok || email == "" || password == "" {
			return nil, apperrors.ErrInvalidAdminUsers
		}
		if _, dup := users[email]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for %s", apperrors.ErrInvalidAdminUsers, email)
		}
		users[email] = password
	}
	return users, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
