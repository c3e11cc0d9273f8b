// Package config loads mockmate settings from an optional JSON file and
// MOCKMATE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/logger"
	"github.com/jonathan/mockmate/internal/speech"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MOCKMATE_PROVIDER
const EnvPrefix = "MOCKMATE"

// DefaultFileName is looked up in the working directory when no file is given
const DefaultFileName = "mockmate"

// Config represents the mockmate configuration. Every field has a default, so
// an empty environment yields a usable Gemini setup once an API key is present.
type Config struct {
	// Language model
	Provider  string `json:"provider" mapstructure:"provider" validate:"oneof=gemini openai ollama anthropic"`
	APIKey    string `json:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL   string `json:"base_url,omitempty" mapstructure:"base_url" validate:"omitempty,url"`
	Model     string `json:"model,omitempty" mapstructure:"model"` // Overrides every tier when set
	MaxTokens int    `json:"max_tokens,omitempty" mapstructure:"max_tokens" validate:"gte=0"`

	// Speech recognition
	SpeechProvider string `json:"speech_provider" mapstructure:"speech_provider" validate:"omitempty,oneof=gemini whisper none"`
	SpeechAPIKey   string `json:"speech_api_key,omitempty" mapstructure:"speech_api_key"`
	SpeechBaseURL  string `json:"speech_base_url,omitempty" mapstructure:"speech_base_url" validate:"omitempty,url"`
	SpeechModel    string `json:"speech_model,omitempty" mapstructure:"speech_model"`
	SpeechLanguage string `json:"speech_language,omitempty" mapstructure:"speech_language"`

	// Interview
	TechnicalQuestions  int `json:"technical_questions" mapstructure:"technical_questions" validate:"min=1,max=20"`
	BehavioralQuestions int `json:"behavioral_questions" mapstructure:"behavioral_questions" validate:"min=0,max=20"`

	// Server
	Port             int  `json:"port" mapstructure:"port" validate:"min=1,max=65535"`
	MaxUploadMB      int  `json:"max_upload_mb" mapstructure:"max_upload_mb" validate:"min=1,max=100"`
	ProfileCacheSize int  `json:"profile_cache_size" mapstructure:"profile_cache_size" validate:"min=1"`
	RateLimit        bool `json:"rate_limit" mapstructure:"rate_limit"`
	RateLimitPerMin  int  `json:"rate_limit_per_minute" mapstructure:"rate_limit_per_minute" validate:"min=1"`

	// Logging
	LogLevel  string `json:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" mapstructure:"log_format" validate:"oneof=json pretty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Provider:            string(llm.ProviderGemini),
		SpeechProvider:      speech.ProviderGemini,
		TechnicalQuestions:  5,
		BehavioralQuestions: 3,
		Port:                8080,
		MaxUploadMB:         10,
		ProfileCacheSize:    256,
		RateLimit:           true,
		RateLimitPerMin:     120,
		LogLevel:            "info",
		LogFormat:           "pretty",
	}
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables (MOCKMATE_*)
// 2. Config file (path, or ./mockmate.json when path is empty)
// 3. Default values
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultFileName)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Str("file", v.ConfigFileUsed()).Str("provider", cfg.Provider).Msg("configuration loaded")
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("provider", d.Provider)
	v.SetDefault("api_key", d.APIKey)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("model", d.Model)
	v.SetDefault("max_tokens", d.MaxTokens)
	v.SetDefault("speech_provider", d.SpeechProvider)
	v.SetDefault("speech_api_key", d.SpeechAPIKey)
	v.SetDefault("speech_base_url", d.SpeechBaseURL)
	v.SetDefault("speech_model", d.SpeechModel)
	v.SetDefault("speech_language", d.SpeechLanguage)
	v.SetDefault("technical_questions", d.TechnicalQuestions)
	v.SetDefault("behavioral_questions", d.BehavioralQuestions)
	v.SetDefault("port", d.Port)
	v.SetDefault("max_upload_mb", d.MaxUploadMB)
	v.SetDefault("profile_cache_size", d.ProfileCacheSize)
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("rate_limit_per_minute", d.RateLimitPerMin)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
}

// ValidationError lists the fields that failed validation
type ValidationError struct {
	Fields []string
	Cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config error: invalid %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

var validate = validator.New()

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("'%s' (%s)", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Fields: fields, Cause: err}
}

// providerKeyEnv names the conventional API key variable of each provider
var providerKeyEnv = map[string]string{
	string(llm.ProviderGemini):    "GEMINI_API_KEY",
	string(llm.ProviderOpenAI):    "OPENAI_API_KEY",
	string(llm.ProviderAnthropic): "ANTHROPIC_API_KEY",
	speech.ProviderWhisper:        "OPENAI_API_KEY",
}

// ResolveAPIKey returns the configured key or the provider's conventional env var
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(providerKeyEnv[c.Provider])
}

// ResolveSpeechAPIKey returns the speech key, falling back to the provider env
// var and then to the language model key when both use the same vendor.
func (c *Config) ResolveSpeechAPIKey() string {
	if c.SpeechAPIKey != "" {
		return c.SpeechAPIKey
	}
	if key := os.Getenv(providerKeyEnv[c.SpeechProvider]); key != "" {
		return key
	}
	sameVendor := c.SpeechProvider == c.Provider ||
		(c.SpeechProvider == speech.ProviderWhisper && c.Provider == string(llm.ProviderOpenAI))
	if sameVendor {
		return c.APIKey
	}
	return ""
}

// LLMConfig builds the language model client configuration
func (c *Config) LLMConfig() (*llm.Config, error) {
	provider, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return nil, err
	}

	cfg := llm.ConfigFor(provider)
	if c.Model != "" {
		cfg = cfg.WithAllModels(c.Model)
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.MaxTokens > 0 {
		cfg.MaxTokens = c.MaxTokens
	}
	return cfg, nil
}

// SpeechEnabled reports whether audio answers are configured
func (c *Config) SpeechEnabled() bool {
	return c.SpeechProvider != "" && c.SpeechProvider != "none"
}

// SpeechConfig builds the speech provider configuration
func (c *Config) SpeechConfig() speech.Config {
	return speech.Config{
		Provider: c.SpeechProvider,
		APIKey:   c.ResolveSpeechAPIKey(),
		BaseURL:  c.SpeechBaseURL,
		Model:    c.SpeechModel,
		Language: c.SpeechLanguage,
	}
}

// LoggerConfig builds the logger configuration
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// MaxUploadBytes is the request body limit for document and audio uploads
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
