package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Gate  GateConfig
	Badge BadgeConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig settings for the gate session tokens.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// GateConfig settings for the billing-screen access gate.
//
// Code is the 4-digit key the billing modal asks for. It is injected here
// instead of being baked into logic, but it remains what it always was: a
// shared string compared for equality, not real authentication.
type GateConfig struct {
	Code string
}

// BadgeConfig settings for the optional branding badge placed on estimates.
// An empty URL disables the badge entirely; a fetch failure or timeout only
// skips it, never the document.
type BadgeConfig struct {
	URL       string
	TimeoutMS int
}

// Timeout returns the bounded fetch effort for the badge.
func (c BadgeConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Load reads configuration from environment variables (and optionally from a
// .env or config.env file). Env vars take priority. Expected names: APP_ENV,
// HTTP_PORT, JWT_SECRET, GATE_CODE, BADGE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env); missing files are fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "remo-billing"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "remo-billing"),
		},
		Gate: GateConfig{
			Code: getString(v, "GATE_CODE", "9876"),
		},
		Badge: BadgeConfig{
			URL:       getString(v, "BADGE_URL", ""),
			TimeoutMS: getInt(v, "BADGE_TIMEOUT_MS", 3000),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
