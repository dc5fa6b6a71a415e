package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"port"`
	LogLevel  string `mapstructure:"log_level"`
	CorpusDir string `mapstructure:"corpus_dir"`

	MaxContextTokens int `mapstructure:"max_context_tokens"`
	CacheTTLSeconds  int `mapstructure:"cache_ttl_seconds"`

	CacheBackend  string `mapstructure:"cache_backend"`
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     int    `mapstructure:"redis_port"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	MongoURI      string `mapstructure:"MONGODB_URI"`

	CompletionProvider string  `mapstructure:"completion_provider"`
	Model              string  `mapstructure:"model"`
	MaxOutputTokens    int     `mapstructure:"max_output_tokens"`
	Temperature        float64 `mapstructure:"temperature"`
	OpenAIBaseURL      string  `mapstructure:"openai_base_url"`
	OpenAIAPIKey       string  `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey       string  `mapstructure:"GEMINI_API_KEY"`

	SlackSigningSecret string `mapstructure:"SLACK_SIGNING_SECRET"`
	SlackClientID      string `mapstructure:"SLACK_CLIENT_ID"`
	SlackClientSecret  string `mapstructure:"SLACK_CLIENT_SECRET"`
}

// LoadConfig reads the optional YAML config file and the environment.
// Environment variables win over file values.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("corpus_dir", "data/corpus")
	v.SetDefault("max_context_tokens", 7000)
	v.SetDefault("cache_ttl_seconds", 86400)
	v.SetDefault("cache_backend", "redis")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("completion_provider", "openai")
	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("max_output_tokens", 500)
	v.SetDefault("temperature", 0.7)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()

	// Bind environment variables
	v.BindEnv("port", "PORT")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("corpus_dir", "CORPUS_DIR")
	v.BindEnv("max_context_tokens", "MAX_CONTEXT_TOKENS")
	v.BindEnv("cache_ttl_seconds", "CACHE_TTL_SECONDS")
	v.BindEnv("cache_backend", "CACHE_BACKEND")
	v.BindEnv("redis_host", "REDIS_HOST")
	v.BindEnv("redis_port", "REDIS_PORT")
	v.BindEnv("REDIS_PASSWORD")
	v.BindEnv("MONGODB_URI")
	v.BindEnv("completion_provider", "COMPLETION_PROVIDER")
	v.BindEnv("model", "MODEL")
	v.BindEnv("max_output_tokens", "MAX_OUTPUT_TOKENS")
	v.BindEnv("temperature", "TEMPERATURE")
	v.BindEnv("openai_base_url", "OPENAI_BASE_URL")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("SLACK_SIGNING_SECRET")
	v.BindEnv("SLACK_CLIENT_ID")
	v.BindEnv("SLACK_CLIENT_SECRET")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// Validate checks that every mandatory credential is present and returns
// one error enumerating all missing variables, so startup fails with the
// complete list instead of one variable at a time.
func (c *Config) Validate() error {
	var missing []string

	switch c.CompletionProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	default:
		if c.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	}
	if c.SlackSigningSecret == "" {
		missing = append(missing, "SLACK_SIGNING_SECRET")
	}
	if c.SlackClientID == "" {
		missing = append(missing, "SLACK_CLIENT_ID")
	}
	if c.SlackClientSecret == "" {
		missing = append(missing, "SLACK_CLIENT_SECRET")
	}
	if c.CacheBackend == "mongo" && c.MongoURI == "" {
		missing = append(missing, "MONGODB_URI")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing critical environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
