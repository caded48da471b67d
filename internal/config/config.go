package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Env         string `envconfig:"ENV" default:"production"`
	Version     string `envconfig:"VERSION" default:"dev"`
	APIPrefix   string `envconfig:"API_PREFIX" default:"/api/v1"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer  string        `envconfig:"JWT_ISSUER" default:"authprofile"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"60m"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"12"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`

	OpenAIAPIKey    string        `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel     string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL   string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	ChatTimeout     time.Duration `envconfig:"CHAT_TIMEOUT" default:"30s"`
	ChatMaxRetries  int           `envconfig:"CHAT_MAX_RETRIES" default:"2"`
	ChatRequireAuth bool          `envconfig:"CHAT_REQUIRE_AUTH" default:"true"`

	DevAdminName     string `envconfig:"DEV_ADMIN_NAME" default:"Admin"`
	DevAdminEmail    string `envconfig:"DEV_ADMIN_EMAIL" default:"admin@example.com"`
	DevAdminPassword string `envconfig:"DEV_ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.ChatTimeout <= 0 {
		return fmt.Errorf("CHAT_TIMEOUT must be positive, got %s", c.ChatTimeout)
	}
	if c.ChatMaxRetries < 0 {
		return fmt.Errorf("CHAT_MAX_RETRIES must not be negative, got %d", c.ChatMaxRetries)
	}
	return nil
}

// IsDev reports whether ENV selects the development environment.
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// DevAdminEnabled reports whether the admin provisioning route may be
// mounted: development environment and an explicitly configured password.
func (c *Config) DevAdminEnabled() bool {
	return c.IsDev() && c.DevAdminPassword != ""
}
