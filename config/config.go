package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Extraction pipeline tuning
	Pipeline PipelineConfig

	// LLM provider abstraction
	LLM LLMConfig

	// Calendar export
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PipelineConfig holds tuning knobs for the extraction pipeline.
// The source system buried a character cutoff inside the LLM call; here
// chunking replaces truncation and every limit is configurable.
type PipelineConfig struct {
	ChunkSize            int           // max chunk size in characters
	ChunkOverlap         int           // overlap between adjacent chunks
	MaxConcurrentChunks  int           // worker pool size for per-chunk calls
	RequestsPerMinute    int           // shared rate limit for reasoning calls
	DefaultEstimateHours float64       // estimate used when the workload stage degrades
	MaxItemHours         float64       // clamp ceiling for absurd estimates
	FallbackScanLimit    int           // max lines the keyword extractor scans
	MinDocumentChars     int           // reject shorter inputs at the boundary
	Timeout              time.Duration // top-level pipeline timeout
	CacheTTL             time.Duration // chunk result cache TTL
	CacheSize            int           // chunk result cache capacity
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Pipeline
	cfg.Pipeline.ChunkSize = viper.GetInt("pipeline.chunk_size")
	cfg.Pipeline.ChunkOverlap = viper.GetInt("pipeline.chunk_overlap")
	cfg.Pipeline.MaxConcurrentChunks = viper.GetInt("pipeline.max_concurrent_chunks")
	cfg.Pipeline.RequestsPerMinute = viper.GetInt("pipeline.requests_per_minute")
	cfg.Pipeline.DefaultEstimateHours = viper.GetFloat64("pipeline.default_estimate_hours")
	cfg.Pipeline.MaxItemHours = viper.GetFloat64("pipeline.max_item_hours")
	cfg.Pipeline.FallbackScanLimit = viper.GetInt("pipeline.fallback_scan_limit")
	cfg.Pipeline.MinDocumentChars = viper.GetInt("pipeline.min_document_chars")
	cfg.Pipeline.Timeout = viper.GetDuration("pipeline.timeout")
	cfg.Pipeline.CacheTTL = viper.GetDuration("pipeline.cache_ttl")
	cfg.Pipeline.CacheSize = viper.GetInt("pipeline.cache_size")

	// LLM provider abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Google Calendar export
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Pipeline defaults
	viper.SetDefault("pipeline.chunk_size", 6000)
	viper.SetDefault("pipeline.chunk_overlap", 200)
	viper.SetDefault("pipeline.max_concurrent_chunks", 3)
	viper.SetDefault("pipeline.requests_per_minute", 30)
	viper.SetDefault("pipeline.default_estimate_hours", 5)
	viper.SetDefault("pipeline.max_item_hours", 200)
	viper.SetDefault("pipeline.fallback_scan_limit", 2000)
	viper.SetDefault("pipeline.min_document_chars", 100)
	viper.SetDefault("pipeline.timeout", "3m")
	viper.SetDefault("pipeline.cache_ttl", "10m")
	viper.SetDefault("pipeline.cache_size", 256)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.timezone", "UTC")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// ValidateLLMConfig validates the LLM configuration.
func ValidateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
