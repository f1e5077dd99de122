package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	OpenWeather OpenWeatherConfig `mapstructure:"openweather"`
	Model       ModelConfig       `mapstructure:"model"`
	Alert       AlertConfig       `mapstructure:"alert"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	GinMode         string        `mapstructure:"gin_mode" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// OpenWeatherConfig holds weather provider settings
type OpenWeatherConfig struct {
	APIKey      string        `mapstructure:"api_key" validate:"required"`
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	CountryCode string        `mapstructure:"country_code" validate:"required,len=2"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// ModelConfig selects and locates the risk model
type ModelConfig struct {
	Kind    string        `mapstructure:"kind" validate:"oneof=linear remote"`
	Path    string        `mapstructure:"path" validate:"required_if=Kind linear"`
	URL     string        `mapstructure:"url" validate:"omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// AlertConfig holds the optional email alert settings. Every field may be
// empty; alerting is disabled rather than failing.
type AlertConfig struct {
	EmailAddress  string `mapstructure:"email_address"`
	EmailPassword string `mapstructure:"email_password"`
	Recipient     string `mapstructure:"recipient"`
	SMTPServer    string `mapstructure:"smtp_server"`
	SMTPPort      int    `mapstructure:"smtp_port"`

	// Threshold is nil when no threshold is configured
	Threshold *float64 `mapstructure:"-"`
}

// Enabled reports whether a sender address is configured
func (a AlertConfig) Enabled() bool {
	return a.EmailAddress != ""
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; existing env vars are not overridden
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.heat-risk")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("openweather.api_key", "")
	v.SetDefault("openweather.base_url", "http://api.openweathermap.org/data/2.5")
	v.SetDefault("openweather.country_code", "IN")
	v.SetDefault("openweather.timeout", 10*time.Second)
	v.SetDefault("model.kind", "linear")
	v.SetDefault("model.path", "heat_risk_model.json")
	v.SetDefault("model.url", "")
	v.SetDefault("model.timeout", 5*time.Second)
	v.SetDefault("alert.email_address", "")
	v.SetDefault("alert.email_password", "")
	v.SetDefault("alert.recipient", "")
	v.SetDefault("alert.smtp_server", "")
	v.SetDefault("alert.smtp_port", 465)

	// Read from environment variables, e.g. HEAT_RISK_OPENWEATHER_API_KEY
	v.SetEnvPrefix("HEAT_RISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Threshold has no default so its absence can be detected
	_ = v.BindEnv("alert.threshold")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if v.IsSet("alert.threshold") {
		threshold, err := parseThreshold(v.Get("alert.threshold"))
		if err != nil {
			return nil, err
		}
		cfg.Alert.Threshold = &threshold
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func parseThreshold(raw any) (float64, error) {
	s := strings.TrimSpace(fmt.Sprint(raw))
	threshold, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid alert.threshold %q: %w", s, err)
	}
	return threshold, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
