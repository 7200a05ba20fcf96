package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Mikrotik captive portal.
	MikrotikHost     string `mapstructure:"MIKROTIK_HOST"`
	MikrotikUsername string `mapstructure:"MIKROTIK_USERNAME"`
	MikrotikPassword string `mapstructure:"MIKROTIK_PASSWORD"`
	MikrotikProfile  string `mapstructure:"MIKROTIK_PROFILE"`
	DefaultBandwidth string `mapstructure:"DEFAULT_BANDWIDTH"`

	// Payment providers.
	XenditSecretKey string `mapstructure:"XENDIT_SECRET_KEY"`
	XenditBaseURL   string `mapstructure:"XENDIT_BASE_URL"`
	StripeKey       string `mapstructure:"STRIPE_KEY"`

	// Fonnte WhatsApp gateway.
	FonnteToken   string `mapstructure:"FONNTE_TOKEN"`
	FonnteBaseURL string `mapstructure:"FONNTE_BASE_URL"`

	// Collaborator call policy.
	ProviderTimeoutSec   int `mapstructure:"PROVIDER_TIMEOUT_SEC"`
	ProviderRetryDelayMs int `mapstructure:"PROVIDER_RETRY_DELAY_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MIKROTIK_HOST", "192.168.1.1")
	viper.SetDefault("MIKROTIK_USERNAME", "admin")
	viper.SetDefault("MIKROTIK_PASSWORD", "admin")
	viper.SetDefault("MIKROTIK_PROFILE", "coden_profile")
	viper.SetDefault("DEFAULT_BANDWIDTH", "5M/5M")
	viper.SetDefault("XENDIT_BASE_URL", "https://api.xendit.co")
	viper.SetDefault("FONNTE_BASE_URL", "https://api.fonnte.com")
	viper.SetDefault("PROVIDER_TIMEOUT_SEC", 10)
	viper.SetDefault("PROVIDER_RETRY_DELAY_MS", 500)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ProviderTimeout returns the per-call timeout for external collaborator calls.
func ProviderTimeout() time.Duration {
	if AppConfig.ProviderTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(AppConfig.ProviderTimeoutSec) * time.Second
}

// ProviderRetryDelay returns the fixed backoff before the single automatic retry.
func ProviderRetryDelay() time.Duration {
	if AppConfig.ProviderRetryDelayMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(AppConfig.ProviderRetryDelayMs) * time.Millisecond
}
