package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	OTP      OTPConfig
	Logger   LoggerConfig
}

// AppConfig holds general application settings
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings
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

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig holds token signing settings. Access and refresh tokens are
// signed with distinct secrets so a leaked refresh secret cannot forge
// access tokens and vice versa.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
}

// SMTPConfig holds outgoing mail settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// OTPConfig holds one-time password settings
type OTPConfig struct {
	TTLSeconds    int // lifetime of a cached code
	MaxAttempts   int // failed verifications allowed per window
	AttemptWindow int // attempt counter window in seconds
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
