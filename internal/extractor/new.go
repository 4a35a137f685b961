package extractor

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/meeting-report/internal/locale"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"google.golang.org/genai"
)

// generateFunc sends one request to Gemini and returns the response text.
type generateFunc func(ctx context.Context, apiKey, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)

type implGemini struct {
	apiKeys     []string
	model       string
	temperature float32
	locales     *locale.Registry
	logger      logger.Logger
	generate    generateFunc

	mu         sync.Mutex
	currentKey int
}

// Options configures the Gemini extractor.
type Options struct {
	APIKeys     []string
	Model       string
	Temperature float32
}

// New creates an Extractor backed by Gemini. When a key hits its quota the
// following requests move on to the next key.
func New(opts Options, locales *locale.Registry, log logger.Logger) Extractor {
	return &implGemini{
		apiKeys:     opts.APIKeys,
		model:       opts.Model,
		temperature: opts.Temperature,
		locales:     locales,
		logger:      log,
		generate:    callGemini,
	}
}
