package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Services  ServicesConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
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

// OTPConfig contains one-time passcode configuration
type OTPConfig struct {
	TTLSeconds  int // how long an issued code stays valid
	MaxAttempts int // verification attempts before the session is purged
}

// ServicesConfig contains URLs for external collaborators
type ServicesConfig struct {
	IdentityServiceURL string
	TodoServiceURL     string
	RequestTimeout     int // in seconds
}

// RateLimitConfig contains rate limiter configuration for auth endpoints
type RateLimitConfig struct {
	Enabled       bool
	Limit         int
	PeriodSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
