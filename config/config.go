package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig
	MinIO    MinIOConfig

	// Application Configuration
	App  AppConfig
	Mail MailConfig

	// Secrets come from the environment only
	Secrets SecretsConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for the CRM record store
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for the digest archive. An empty endpoint disables it.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// AppConfig holds the application level settings.
type AppConfig struct {
	// Timezone defines what "today" means for alert evaluation.
	Timezone string
	// BaseURL is the public address of the CRM front end, used for links in emails.
	BaseURL string
}

// Location resolves Timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MailConfig is the configuration for the Microsoft Graph mail sender
type MailConfig struct {
	GraphBaseURL string
	SendTimeout  time.Duration
}

// SecretsConfig is parsed from environment variables.
type SecretsConfig struct {
	JWTSecretKey      string `env:"JWT_SECRET_KEY"`
	EncryptKey        string `env:"ENCRYPT_KEY"`
	InternalKey       string `env:"INTERNAL_KEY"`
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("advisor-alert-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/advisor-alert/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")
	cfg.Server.AllowedOrigins = viper.GetStringSlice("server.allowed_origins")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// App
	cfg.App.Timezone = viper.GetString("app.timezone")
	cfg.App.BaseURL = strings.TrimRight(viper.GetString("app.base_url"), "/")

	// Mail
	cfg.Mail.GraphBaseURL = viper.GetString("mail.graph_base_url")
	cfg.Mail.SendTimeout = viper.GetDuration("mail.send_timeout")

	// Secrets
	if err := env.Parse(&cfg.Secrets); err != nil {
		return nil, fmt.Errorf("error parsing secrets: %w", err)
	}

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.sslmode", "disable")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	// MinIO
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "advisor-alerts")

	// App
	viper.SetDefault("app.timezone", "America/Argentina/Buenos_Aires")

	// Mail
	viper.SetDefault("mail.graph_base_url", "https://graph.microsoft.com")
	viper.SetDefault("mail.send_timeout", 30*time.Second)
}

func validate(cfg *Config) error {
	// Validate secrets
	if cfg.Secrets.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if len(cfg.Secrets.JWTSecretKey) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters for security")
	}
	if cfg.Secrets.EncryptKey == "" {
		return fmt.Errorf("ENCRYPT_KEY is required")
	}

	// Validate app
	if cfg.App.BaseURL == "" {
		return fmt.Errorf("app.base_url is required")
	}
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone is invalid: %w", err)
	}

	// Validate Postgres
	if cfg.Postgres.Host == "" || cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.host and postgres.dbname are required")
	}

	// Validate Redis
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Mail
	if cfg.Mail.SendTimeout <= 0 {
		return fmt.Errorf("mail.send_timeout must be positive")
	}

	return nil
}
