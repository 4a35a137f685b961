package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid whisper config",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
				},
				Gemini: GeminiConfig{APIKeys: []string{"k"}},
			},
			wantErr: false,
		},
		{
			name: "missing gemini key",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
				},
			},
			wantErr: true,
		},
		{
			name: "missing whisper binary",
			config: Config{
				Whisper: WhisperConfig{ModelsDir: "models"},
				Gemini:  GeminiConfig{APIKeys: []string{"k"}},
			},
			wantErr: true,
		},
		{
			name: "openai backend without key",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "openai"},
				Gemini:      GeminiConfig{APIKeys: []string{"k"}},
			},
			wantErr: true,
		},
		{
			name: "openai backend with key",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "openai"},
				OpenAI:      OpenAIConfig{APIKey: "sk"},
				Gemini:      GeminiConfig{APIKeys: []string{"k"}},
			},
			wantErr: false,
		},
		{
			name: "unknown backend",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "vosk"},
				Gemini:      GeminiConfig{APIKeys: []string{"k"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{BinaryPath: "whisper-cli", ModelsDir: "models"},
		Gemini:  GeminiConfig{APIKeys: []string{"k"}},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Transcriber.ModelSize != "small" {
		t.Errorf("ModelSize = %v, want %v", cfg.Transcriber.ModelSize, "small")
	}
	if cfg.Gemini.Model != "gemini-flash-latest" {
		t.Errorf("Gemini.Model = %v, want %v", cfg.Gemini.Model, "gemini-flash-latest")
	}
	if cfg.Gemini.Temperature == nil || *cfg.Gemini.Temperature != 0.3 {
		t.Errorf("Gemini.Temperature = %v, want %v", cfg.Gemini.Temperature, 0.3)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want %v", cfg.Performance.MaxConcurrent, 2)
	}
	if cfg.Reports.Retention != time.Hour {
		t.Errorf("Retention = %v, want %v", cfg.Reports.Retention, time.Hour)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "from-env")
	t.Setenv("GOOGLE_API_KEYS", "")
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9000"
  read_timeout: 45s

transcriber:
  backend: "whisper"
  model_size: "medium"

whisper:
  binary_path: "./whisper-cli"
  models_dir: "models"
  threads: 4

gemini:
  model: "gemini-2.5-flash"
  api_keys: ["from-file"]

paths:
  reports: "data/reports"

reports:
  retention: 30m
  docx: true

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":9000")
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Transcriber.ModelSize != "medium" {
		t.Errorf("ModelSize = %v, want %v", cfg.Transcriber.ModelSize, "medium")
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[0] != "from-file" || cfg.Gemini.APIKeys[1] != "from-env" {
		t.Errorf("APIKeys = %v, want [from-file from-env]", cfg.Gemini.APIKeys)
	}
	if cfg.Reports.Retention != 30*time.Minute {
		t.Errorf("Retention = %v, want %v", cfg.Reports.Retention, 30*time.Minute)
	}
	if !cfg.Reports.Docx {
		t.Error("Reports.Docx = false, want true")
	}
}

func TestLoadZeroTemperature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  binary_path: "./whisper-cli"
  models_dir: "models"
gemini:
  temperature: 0
  api_keys: ["k"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gemini.Temperature == nil || *cfg.Gemini.Temperature != 0 {
		t.Errorf("Gemini.Temperature = %v, want 0", cfg.Gemini.Temperature)
	}
}

func TestLoadDeduplicatesKeys(t *testing.T) {
	t.Setenv("GOOGLE_API_KEYS", "shared, second ,shared")
	t.Setenv("GOOGLE_API_KEY", "shared")
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  binary_path: "./whisper-cli"
  models_dir: "models"
gemini:
  api_keys: ["second", ""]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"second", "shared"}
	if len(cfg.Gemini.APIKeys) != len(want) {
		t.Fatalf("APIKeys = %v, want %v", cfg.Gemini.APIKeys, want)
	}
	for i := range want {
		if cfg.Gemini.APIKeys[i] != want[i] {
			t.Errorf("APIKeys[%d] = %v, want %v", i, cfg.Gemini.APIKeys[i], want[i])
		}
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
