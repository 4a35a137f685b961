package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Reports     ReportsConfig     `yaml:"reports"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxUploadMB  int64         `yaml:"max_upload_mb"`
}

type TranscriberConfig struct {
	// Backend is "whisper" (local whisper.cpp) or "openai".
	Backend   string `yaml:"backend"`
	ModelSize string `yaml:"model_size"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelsDir  string `yaml:"models_dir"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type OpenAIConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"-"`
}

type GeminiConfig struct {
	Model       string   `yaml:"model"`
	// Temperature is a pointer so an explicit 0 is kept.
	Temperature *float32 `yaml:"temperature"`
	APIKeys     []string `yaml:"api_keys"`
}

type PathsConfig struct {
	Uploads  string `yaml:"uploads"`
	Reports  string `yaml:"reports"`
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type ReportsConfig struct {
	Retention     time.Duration `yaml:"retention"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	Docx          bool          `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the yaml file at path, merges secrets from the environment
// (and a .env file if one exists) and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

const defaultTemperature = 0.3

// uniqueKeys drops blank and repeated keys, keeping first-seen order.
func uniqueKeys(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0]
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func (c *Config) applyEnv() {
	if keys := os.Getenv("GOOGLE_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
			}
		}
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.Gemini.APIKeys = append(c.Gemini.APIKeys, key)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.OpenAI.APIKey = key
	}
}

func (c *Config) Validate() error {
	c.Gemini.APIKeys = uniqueKeys(c.Gemini.APIKeys)
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini api key is required (GOOGLE_API_KEY or gemini.api_keys)")
	}

	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = "whisper"
	}
	switch c.Transcriber.Backend {
	case "whisper":
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
		if c.Whisper.ModelsDir == "" {
			return fmt.Errorf("whisper.models_dir is required")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai transcriber")
		}
	default:
		return fmt.Errorf("transcriber.backend %q is not supported", c.Transcriber.Backend)
	}

	if c.Transcriber.ModelSize == "" {
		c.Transcriber.ModelSize = "small"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-flash-latest"
	}
	if c.Gemini.Temperature == nil {
		temperature := float32(defaultTemperature)
		c.Gemini.Temperature = &temperature
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 200
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = os.TempDir()
	}
	if c.Paths.Reports == "" {
		c.Paths.Reports = "data/reports"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Reports.Retention == 0 {
		c.Reports.Retention = time.Hour
	}
	if c.Reports.SweepInterval == 0 {
		c.Reports.SweepInterval = 10 * time.Minute
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
