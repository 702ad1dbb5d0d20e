package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// FileName is the optional config file looked up in the search paths
const FileName = "rendevu"

// Config represents the rendevu configuration
type Config struct {
	Calcom CalcomConfig `mapstructure:"calcom"`
	AI     AIConfig     `mapstructure:"ai"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Log    LogConfig    `mapstructure:"log"`
}

// CalcomConfig contains Cal.com API settings
type CalcomConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	APIVersion string        `mapstructure:"api_version"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// AIConfig selects and configures the generative text backend
type AIConfig struct {
	Provider         string `mapstructure:"provider"` // anthropic, openai
	Model            string `mapstructure:"model"`
	AnthropicAPIKey  string `mapstructure:"anthropic_api_key"`
	AnthropicBaseURL string `mapstructure:"anthropic_base_url"`
	OpenAIAPIKey     string `mapstructure:"openai_api_key"`
	OpenAIBaseURL    string `mapstructure:"openai_base_url"`
}

// HTTPConfig contains webhook relay server settings
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"` // development, production
}

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"calcom.api_key":        "CALCOM_API_KEY",
	"calcom.base_url":       "CALCOM_API_BASE_URL",
	"calcom.api_version":    "CALCOM_API_VERSION",
	"calcom.timeout":        "CALCOM_TIMEOUT",
	"ai.provider":           "AI_PROVIDER",
	"ai.model":              "AI_MODEL",
	"ai.anthropic_api_key":  "ANTHROPIC_API_KEY",
	"ai.anthropic_base_url": "ANTHROPIC_BASE_URL",
	"ai.openai_api_key":     "OPENAI_API_KEY",
	"ai.openai_base_url":    "OPENAI_BASE_URL",
	"http.addr":             "HTTP_ADDR",
	"log.level":             "LOG_LEVEL",
	"log.env":               "ENV",
}

// Load reads configuration from path, or from rendevu.yaml in the current
// directory or $HOME/.config/rendevu when path is empty. A missing file in the
// search paths is not an error; environment variables always win.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rendevu"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("calcom.base_url", "https://api.cal.com/v2")
	v.SetDefault("calcom.api_version", "2024-06-11")
	v.SetDefault("calcom.timeout", 30*time.Second)

	v.SetDefault("ai.provider", "anthropic")

	v.SetDefault("http.addr", ":3000")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "development")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case "anthropic", "openai":
	default:
		return fmt.Errorf("invalid AI provider: %s (must be 'anthropic' or 'openai')", c.AI.Provider)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Calcom.Timeout <= 0 {
		return fmt.Errorf("calcom timeout must be positive, got %s", c.Calcom.Timeout)
	}

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("http addr is required")
	}

	return nil
}

// RequireCalcom reports a missing Cal.com API key. Only the MCP server needs it.
func (c *Config) RequireCalcom() error {
	if c.Calcom.APIKey == "" {
		return fmt.Errorf("missing required environment variable: CALCOM_API_KEY")
	}
	return nil
}

// IsProduction reports whether logs should use the production encoder
func (c *Config) IsProduction() bool {
	return c.Log.Env == "production"
}

// AIAPIKey returns the key for the selected provider
func (c *Config) AIAPIKey() string {
	if c.AI.Provider == "openai" {
		return c.AI.OpenAIAPIKey
	}
	return c.AI.AnthropicAPIKey
}

// AIBaseURL returns the base URL override for the selected provider
func (c *Config) AIBaseURL() string {
	if c.AI.Provider == "openai" {
		return c.AI.OpenAIBaseURL
	}
	return c.AI.AnthropicBaseURL
}
