package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for askdb.
// Configuration can come from a YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values. Secrets
// (database password, API key) must only come from environment variables.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
	Log      LogConfig      `yaml:"log"`
	Version  string         `yaml:"-"` // Set at load time, not from config
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"postgres"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"postgres"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"4"`
}

// LLMConfig holds settings for the remote chat-completion endpoint.
type LLMConfig struct {
	BaseURL string `yaml:"base_url" env:"LLM_BASE_URL" env-default:"http://localhost:1234/v1"`
	Model   string `yaml:"model" env:"LLM_MODEL" env-default:"gemma-3-12b-it-qat"`
	APIKey  string `yaml:"-" env:"LLM_API_KEY"` // Secret - optional for local endpoints

	// TimeoutSeconds caps each chat-completion call. One attempt, no retries.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"LLM_TIMEOUT_SECONDS" env-default:"120"`

	// InsecureSkipVerify disables TLS certificate verification for the model
	// endpoint. Only meant for endpoints on a trusted local network.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" env:"LLM_INSECURE_SKIP_VERIFY" env-default:"false"`

	// AnswerLanguage is the natural language answers are phrased in.
	AnswerLanguage string `yaml:"answer_language" env:"LLM_ANSWER_LANGUAGE" env-default:"English"`

	SQLTemperature    float32 `yaml:"sql_temperature" env:"LLM_SQL_TEMPERATURE" env-default:"0.1"`
	AnswerTemperature float32 `yaml:"answer_temperature" env:"LLM_ANSWER_TEMPERATURE" env-default:"0.3"`
	TopP              float32 `yaml:"top_p" env:"LLM_TOP_P" env-default:"0.9"`
	MaxTokens         int     `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"4096"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the given YAML file with environment
// variable overrides. A missing file is not an error; defaults and
// environment variables apply. The version parameter is injected at build
// time.
func Load(path, version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// ConnectionString returns a pgx pool connection string. The host is
// rewritten when running inside Docker so "localhost" reaches the host
// machine.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		ResolveHostForDocker(c.Host), c.Port, c.User, c.Password, c.Database, c.SSLMode, c.MaxConnections,
	)
}
