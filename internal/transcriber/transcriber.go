package transcriber

import (
	"context"
	"fmt"
	"time"
)

func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, modelSize string) (Result, error) {
	m, err := t.model(ctx, modelSize)
	if err != nil {
		return Result{}, fmt.Errorf("load %s model: %w", modelSize, err)
	}

	start := time.Now()
	res, err := m.Transcribe(ctx, audioPath)
	if err != nil {
		return Result{}, err
	}
	res.Language = NormalizeLanguage(res.Language)

	t.logger.Info(ctx, "Transcribed %s in %s (language=%q, %d segments)",
		audioPath, time.Since(start).Round(time.Millisecond), res.Language, len(res.Segments))
	return res, nil
}

// model returns the loaded model for size. A failed load is not cached, so
// the next call tries again.
func (t *implTranscriber) model(ctx context.Context, size string) (Model, error) {
	t.mu.Lock()
	s, ok := t.slots[size]
	if !ok {
		s = &slot{}
		t.slots[size] = s
	}
	t.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		return s.model, nil
	}

	t.logger.Info(ctx, "Loading %s transcription model", size)
	m, err := t.load(ctx, size)
	if err != nil {
		return nil, err
	}
	s.model = m
	return m, nil
}
