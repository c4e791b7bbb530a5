package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Package  PackageConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// GatewayConfig holds the HyperPay credentials. Injected into the gateway
// client at startup; never read from module-level state.
type GatewayConfig struct {
	BaseURL          string
	AccessToken      string
	EntityID         string
	ApplePayEntityID string
	Currency         string
	Timeout          time.Duration
}

type PackageConfig struct {
	ExpiryDays int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("GATEWAY_CURRENCY", "SAR")
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 15)
	viper.SetDefault("PACKAGE_EXPIRY_DAYS", 60)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Gateway: GatewayConfig{
			BaseURL:          viper.GetString("GATEWAY_BASE_URL"),
			AccessToken:      viper.GetString("GATEWAY_ACCESS_TOKEN"),
			EntityID:         viper.GetString("GATEWAY_ENTITY_ID"),
			ApplePayEntityID: viper.GetString("GATEWAY_APPLEPAY_ENTITY_ID"),
			Currency:         viper.GetString("GATEWAY_CURRENCY"),
			Timeout:          time.Duration(viper.GetInt("GATEWAY_TIMEOUT_SECONDS")) * time.Second,
		},
		Package: PackageConfig{
			ExpiryDays: viper.GetInt("PACKAGE_EXPIRY_DAYS"),
		},
	}

	return config, nil
}
