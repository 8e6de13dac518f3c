package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// Admin credentials as comma separated email:password pairs.
	// A password starting with "$2" is treated as a bcrypt hash.
	AdminUsers string `mapstructure:"ADMIN_USERS"`

	// CORS / proxy configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// QR configuration
	QRBaseURL string `mapstructure:"QR_BASE_URL"`
	QRSize    int    `mapstructure:"QR_SIZE"`

	// Voting configuration
	VotingEnabled          bool `mapstructure:"VOTING_ENABLED"`
	VoteRateLimitPerMinute int  `mapstructure:"VOTE_RATE_LIMIT_PER_MINUTE"`
	APIRateLimitPerMinute  int  `mapstructure:"API_RATE_LIMIT_PER_MINUTE"`

	// LDAP configuration (optional admin credential source)
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated env values arrive as a single element
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.TrustedProxies = splitList(config.TrustedProxies)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "event_voting")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL", "12h")

	viper.SetDefault("ADMIN_USERS", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("TRUSTED_PROXIES", []string{})

	// QR defaults
	viper.SetDefault("QR_BASE_URL", "http://localhost:7008")
	viper.SetDefault("QR_SIZE", 512)

	// Voting defaults
	viper.SetDefault("VOTING_ENABLED", true)
	viper.SetDefault("VOTE_RATE_LIMIT_PER_MINUTE", 10)
	viper.SetDefault("API_RATE_LIMIT_PER_MINUTE", 300)

	// LDAP is disabled unless LDAP_HOST is set
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if u, err := url.Parse(config.QRBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("QR_BASE_URL must be an absolute URL, got %q", config.QRBaseURL)
	}

	if config.QRSize < 64 {
		return fmt.Errorf("QR_SIZE must be at least 64 pixels")
	}

	if config.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LDAPEnabled reports whether an LDAP server is configured for admin logins
func (c *Config) LDAPEnabled() bool {
	return c.LDAPHost != ""
}
