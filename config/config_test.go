package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Postgres: PostgresConfig{Host: "localhost", DBName: "crm"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379},
		App:      AppConfig{Timezone: "America/Argentina/Buenos_Aires", BaseURL: "https://crm.example.com"},
		Mail:     MailConfig{SendTimeout: 30 * time.Second},
		Secrets: SecretsConfig{
			JWTSecretKey: "0123456789abcdef0123456789abcdef",
			EncryptKey:   "encrypt-key",
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validate(validConfig()))

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "missing jwt secret", mutate: func(c *Config) { c.Secrets.JWTSecretKey = "" }},
		{name: "short jwt secret", mutate: func(c *Config) { c.Secrets.JWTSecretKey = "short" }},
		{name: "missing encrypt key", mutate: func(c *Config) { c.Secrets.EncryptKey = "" }},
		{name: "missing base url", mutate: func(c *Config) { c.App.BaseURL = "" }},
		{name: "bad timezone", mutate: func(c *Config) { c.App.Timezone = "Mars/Olympus" }},
		{name: "missing db name", mutate: func(c *Config) { c.Postgres.DBName = "" }},
		{name: "missing redis port", mutate: func(c *Config) { c.Redis.Port = 0 }},
		{name: "zero send timeout", mutate: func(c *Config) { c.Mail.SendTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, validate(cfg))
		})
	}
}

func TestAppConfigLocation(t *testing.T) {
	assert.Equal(t, time.UTC, AppConfig{}.Location())
	assert.Equal(t, time.UTC, AppConfig{Timezone: "nowhere"}.Location())
	assert.Equal(t, "America/Argentina/Buenos_Aires", AppConfig{Timezone: "America/Argentina/Buenos_Aires"}.Location().String())
}
