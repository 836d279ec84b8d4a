package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Routing  RoutingConfig
	Distance DistanceConfig
	Email    EmailConfig
	Contact  ContactConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// RoutingConfig points at the OSRM-compatible routing service
type RoutingConfig struct {
	BaseURL string
	Timeout int // in seconds
}

// DistanceConfig contains distance estimation tuning
type DistanceConfig struct {
	CacheTTL       int // in seconds
	CachePrecision int // decimal places kept on the origin coordinate in cache keys
	RequestDelayMs int // fixed pause between per-destination routing calls
	MaxRetries     int // extra attempts per destination on transport failures
}

// EmailConfig contains the SES relay configuration
type EmailConfig struct {
	Region           string
	FromAddress      string
	ContactRecipient string
	ProRecipient     string
}

// ContactConfig contains rate limiting for the public form endpoints
type ContactConfig struct {
	RateLimit  int
	RatePeriod int // in seconds
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
