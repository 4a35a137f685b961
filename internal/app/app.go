// Package app wires the report pipeline together from configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/config"
	"github.com/nguyentantai21042004/meeting-report/internal/extractor"
	"github.com/nguyentantai21042004/meeting-report/internal/locale"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-report/internal/store"
	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-report/internal/upload"
	"github.com/nguyentantai21042004/meeting-report/pkg/executor"
)

// App holds the long lived components shared by the commands.
type App struct {
	Config   *config.Config
	Logger   logger.Logger
	Locales  *locale.Registry
	Store    store.Store
	Pipeline pipeline.Pipeline
}

// Build creates every component described by cfg, which must already be
// validated. Nothing expensive is loaded here; transcription models are
// loaded on first use.
func Build(cfg *config.Config, log logger.Logger) (*App, error) {
	locales := locale.Default()

	reports, err := store.New(cfg.Paths.Reports, log)
	if err != nil {
		return nil, fmt.Errorf("create report store: %w", err)
	}

	loader, err := newLoader(cfg, log)
	if err != nil {
		return nil, err
	}

	ext := extractor.New(extractor.Options{
		APIKeys:     cfg.Gemini.APIKeys,
		Model:       cfg.Gemini.Model,
		Temperature: *cfg.Gemini.Temperature,
	}, locales, log)

	p := pipeline.New(pipeline.Deps{
		Intake:        upload.New(cfg.Paths.Uploads, log),
		Transcriber:   transcriber.New(loader, log),
		Extractor:     ext,
		Locales:       locales,
		Store:         reports,
		Logger:        log,
		ModelSize:     cfg.Transcriber.ModelSize,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	})

	return &App{
		Config:   cfg,
		Logger:   log,
		Locales:  locales,
		Store:    reports,
		Pipeline: p,
	}, nil
}

func newLoader(cfg *config.Config, log logger.Logger) (transcriber.Loader, error) {
	switch cfg.Transcriber.Backend {
	case "whisper":
		return transcriber.NewWhisperLoader(transcriber.WhisperOptions{
			BinaryPath: cfg.Whisper.BinaryPath,
			FFmpegPath: cfg.FFmpeg.BinaryPath,
			ModelsDir:  cfg.Whisper.ModelsDir,
			Threads:    cfg.Whisper.Threads,
		}, executor.New(), log), nil
	case "openai":
		return transcriber.NewOpenAILoader(transcriber.OpenAIOptions{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		}, log), nil
	default:
		return nil, fmt.Errorf("unsupported transcriber backend %q", cfg.Transcriber.Backend)
	}
}

// RunSweeper removes reports older than the retention period every
// interval until ctx ends.
func (a *App) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(a.Config.Reports.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.Store.Sweep(ctx, a.Config.Reports.Retention); err != nil {
				a.Logger.Warn(ctx, "Report sweep failed: %v", err)
			}
		}
	}
}
