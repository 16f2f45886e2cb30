package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Stripe   StripeConfig   `mapstructure:"stripe" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins are the browser origins permitted to send
	// credentialed requests (the auth cookie rides on CORS).
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains all MongoDB-related configuration settings.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri" validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the session token lifetime. Defaults to
	// one day; tokens stay valid until natural expiry (no blacklist).
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// CookieName is the name of the http-only session cookie.
	CookieName string `mapstructure:"cookie_name" validate:"required"`
}

// StripeConfig contains the payment-processor settings.
type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key" validate:"required"`
	Currency  string `mapstructure:"currency" validate:"required,len=3"`
}
