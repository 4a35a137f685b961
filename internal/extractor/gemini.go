package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/locale"
	"google.golang.org/genai"
)

// Extract asks Gemini for a JSON document following the locale's schema.
// Requests are never retried; a quota error only moves the key pointer.
func (g *implGemini) Extract(ctx context.Context, transcript string, lang locale.Code) (map[string]any, error) {
	if len(g.apiKeys) == 0 {
		return nil, fmt.Errorf("no gemini api key configured")
	}

	cfg, ok := g.locales.Lookup(lang)
	if !ok {
		cfg = g.locales.Baseline()
	}
	p := promptsFor(cfg.Code)

	temperature := g.temperature
	genCfg := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema(cfg.Keys),
		SystemInstruction: genai.NewContentFromText(p.system, genai.RoleUser),
	}

	key, idx := g.key()
	start := time.Now()

	text, err := g.generate(ctx, key, g.model, fmt.Sprintf(p.template, transcript), genCfg)
	if err != nil {
		if isQuotaError(err) {
			g.logger.Warn(ctx, "Key %d rate limited, rotating for the next request", idx+1)
			g.rotateKey(idx)
		}
		return nil, fmt.Errorf("generate content: %w", err)
	}

	g.logger.Info(ctx, "Gemini extraction finished in %s (lang=%s, %d bytes)",
		time.Since(start).Round(time.Millisecond), cfg.Code, len(text))

	return decodeResponse(text)
}

func (g *implGemini) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

// rotateKey advances past idx unless another request already did.
func (g *implGemini) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func decodeResponse(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyResponse
	}
	return out, nil
}

func callGemini(ctx context.Context, apiKey, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
