package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/naijachef/osa/internal/errors"
)

type Config struct {
	Env            string
	ServiceName    string
	ServiceVersion string

	GeminiAPIKey  string
	YouTubeAPIKey string

	OtelExporterOTLPEndpoint string
	OtelExporterOTLPHeaders  string
	SentryDSN                string

	Port string

	Generation GenerationConfig
	Video      VideoConfig
}

type GenerationConfig struct {
	Model       string `yaml:"model"`
	VisionModel string `yaml:"vision_model"`
	SpeechModel string `yaml:"speech_model"`
	Voice       string `yaml:"voice"`
}

type VideoConfig struct {
	SearchSuffix string `yaml:"search_suffix"`
	MaxResults   int64  `yaml:"max_results"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                      os.Getenv("ENV"),
		ServiceName:              os.Getenv("SERVICE_NAME"),
		ServiceVersion:           os.Getenv("SERVICE_VERSION"),
		GeminiAPIKey:             os.Getenv("GEMINI_API_KEY"),
		YouTubeAPIKey:            os.Getenv("YOUTUBE_API_KEY"),
		OtelExporterOTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OtelExporterOTLPHeaders:  os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"),
		SentryDSN:                os.Getenv("SENTRY_DSN"),
		Port:                     os.Getenv("PORT"),
	}

	// Load from YAML file if available
	if err := cfg.LoadFromYAML("config.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load YAML config: %w", err)
	}

	// Set defaults
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "naijachef-osa"
	}
	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = "1.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.SetGenerationDefaults()
	cfg.SetVideoDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) LoadFromYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File not found is not an error
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlConfig struct {
		Generation GenerationConfig `yaml:"generation"`
		Video      VideoConfig      `yaml:"video"`
	}

	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlConfig.Generation.Model != "" {
		c.Generation.Model = yamlConfig.Generation.Model
	}
	if yamlConfig.Generation.VisionModel != "" {
		c.Generation.VisionModel = yamlConfig.Generation.VisionModel
	}
	if yamlConfig.Generation.SpeechModel != "" {
		c.Generation.SpeechModel = yamlConfig.Generation.SpeechModel
	}
	if yamlConfig.Generation.Voice != "" {
		c.Generation.Voice = yamlConfig.Generation.Voice
	}
	if yamlConfig.Video.SearchSuffix != "" {
		c.Video.SearchSuffix = yamlConfig.Video.SearchSuffix
	}
	if yamlConfig.Video.MaxResults > 0 {
		c.Video.MaxResults = yamlConfig.Video.MaxResults
	}

	return nil
}

func (c *Config) SetGenerationDefaults() {
	if c.Generation.Model == "" {
		c.Generation.Model = "gemini-2.5-flash"
	}
	if c.Generation.VisionModel == "" {
		c.Generation.VisionModel = "gemini-2.5-pro"
	}
	if c.Generation.SpeechModel == "" {
		c.Generation.SpeechModel = "gemini-2.5-flash-preview-tts"
	}
	if c.Generation.Voice == "" {
		c.Generation.Voice = "Algenib"
	}
}

func (c *Config) SetVideoDefaults() {
	if c.Video.SearchSuffix == "" {
		c.Video.SearchSuffix = "recipe tutorial"
	}
	if c.Video.MaxResults <= 0 {
		c.Video.MaxResults = 5
	}
}

// validate raises missing credentials at startup so they never surface
// as per-call failures.
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return errors.NewConfigurationError("GEMINI_API_KEY is required", "MISSING_GEMINI_API_KEY", nil)
	}
	if c.YouTubeAPIKey == "" {
		return errors.NewConfigurationError("YOUTUBE_API_KEY is required", "MISSING_YOUTUBE_API_KEY", nil)
	}
	return nil
}
