package transcriber

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIOptions configures the hosted Whisper backend.
type OpenAIOptions struct {
	APIKey  string
	BaseURL string
	Model   string
}

type openaiModel struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAILoader returns a Loader backed by an OpenAI-compatible
// /audio/transcriptions endpoint. The hosted service picks its own model
// size, so the size argument only shows up in logs.
func NewOpenAILoader(opts OpenAIOptions, log logger.Logger) Loader {
	return func(ctx context.Context, size string) (Model, error) {
		if opts.APIKey == "" {
			return nil, fmt.Errorf("openai api key is empty")
		}
		cfg := openai.DefaultConfig(opts.APIKey)
		if opts.BaseURL != "" {
			cfg.BaseURL = opts.BaseURL
		}
		model := opts.Model
		if model == "" {
			model = openai.Whisper1
		}

		log.Debug(ctx, "OpenAI transcription client ready (model=%s, requested size=%s)", model, size)
		return &openaiModel{
			client: openai.NewClientWithConfig(cfg),
			model:  model,
			logger: log,
		}, nil
	}
}

func (o *openaiModel) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Result{}, fmt.Errorf("openai transcribe: %w", err)
	}

	res := Result{
		Text:     resp.Text,
		Language: resp.Language,
	}
	for _, seg := range resp.Segments {
		res.Segments = append(res.Segments, Segment{
			Start: time.Duration(seg.Start * float64(time.Second)),
			End:   time.Duration(seg.End * float64(time.Second)),
			Text:  seg.Text,
		})
	}
	return res, nil
}
