package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsgen.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	AI AIConfig `yaml:"ai" json:"ai" jsonschema:"description=Generative model configuration"`
}

// AIConfig holds the generative model transport settings. The model id itself
// lives in the settings row and this value is only the fallback.
type AIConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://generativelanguage.googleapis.com/v1beta/openai/,description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gemini-1.5-flash,description=Fallback model id when settings carry none"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2048,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables, used for the API credential
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsgen.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for the model transport
	if cfg.AI.Endpoint == "" {
		cfg.AI.Endpoint = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-1.5-flash"
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.3
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 2048
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 60 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key is required")
	}
	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2")
	}
	if cfg.AI.MaxTokens < 1 {
		return fmt.Errorf("ai.max_tokens must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAIConfig returns generative model configuration
func (c *Config) GetAIConfig() AIConfig {
	return c.AI
}
