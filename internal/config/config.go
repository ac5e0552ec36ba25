package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Auth configuration
	BoardSecret string `mapstructure:"BOARD_SECRET"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Runner (porter dispatch) service configuration
	RunnerEnabled    bool   `mapstructure:"RUNNER_ENABLED"`
	RunnerBaseURL    string `mapstructure:"RUNNER_BASE_URL"`
	RunnerTimeoutSec int    `mapstructure:"RUNNER_TIMEOUT_SEC"`

	// Background worker configuration
	SweepIntervalSec    int `mapstructure:"SWEEP_INTERVAL_SEC"`
	DispatchIntervalSec int `mapstructure:"DISPATCH_INTERVAL_SEC"`
	ReturningGraceMin   int `mapstructure:"RETURNING_GRACE_MIN"`

	// Roster configuration
	RosterFile string `mapstructure:"ROSTER_FILE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8088")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "or_caseflow")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Auth defaults
	viper.SetDefault("BOARD_SECRET", "board-secret-change-in-production")
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Runner defaults
	viper.SetDefault("RUNNER_ENABLED", false)
	viper.SetDefault("RUNNER_BASE_URL", "http://127.0.0.1:8777")
	viper.SetDefault("RUNNER_TIMEOUT_SEC", 2)

	// Worker defaults: sweep every 30s, dispatch every 5s, 3-minute returning grace
	viper.SetDefault("SWEEP_INTERVAL_SEC", 30)
	viper.SetDefault("DISPATCH_INTERVAL_SEC", 5)
	viper.SetDefault("RETURNING_GRACE_MIN", 3)

	// Roster defaults
	viper.SetDefault("ROSTER_FILE", "config/roster.yaml")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.BoardSecret == "board-secret-change-in-production" {
			return fmt.Errorf("BOARD_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.ReturningGraceMin < 0 || config.SweepIntervalSec < 0 || config.DispatchIntervalSec < 0 {
		return fmt.Errorf("worker intervals must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
