package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/extractor"
	"github.com/nguyentantai21042004/meeting-report/internal/locale"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/report"
	"github.com/nguyentantai21042004/meeting-report/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-report/internal/upload"
)

// run carries the state of one request through the stages.
type run struct {
	id     string
	state  State
	logger logger.Logger
}

func (r *run) advance(ctx context.Context, next State) {
	r.logger.Debug(ctx, "%s -> %s", r.state, next)
	r.state = next
}

func (r *run) fail(ctx context.Context, err *StageError) *StageError {
	r.logger.Warn(ctx, "%s -> %s(%s): %v", r.state, Failed, err.Stage, err.Cause)
	r.state = Failed
	return err
}

// Run executes save -> transcribe -> resolve -> extract -> render -> store.
// Stages run strictly in order and none is retried.
func (p *implPipeline) Run(ctx context.Context, req Request) (report.Artifact, error) {
	start := time.Now()
	r := &run{id: p.newID(), state: Received}
	r.logger = p.logger.With("report_id", r.id)

	r.logger.Info(ctx, "Starting report generation for %q (%s)", req.Filename, req.ContentType)

	stored, serr := p.save(ctx, req)
	if serr != nil {
		return report.Artifact{}, r.fail(ctx, serr)
	}
	r.advance(ctx, Saved)

	tr, serr := p.transcribe(ctx, stored)
	if serr != nil {
		return report.Artifact{}, r.fail(ctx, serr)
	}
	r.advance(ctx, Transcribed)

	code := p.locales.Resolve(tr.Language)
	r.logger.Info(ctx, "Detected language %q, using %q", tr.Language, code)
	r.advance(ctx, LanguageResolved)

	// Resolve returns registered codes, so a miss means the registry
	// itself is empty.
	cfg, ok := p.locales.Lookup(code)
	if !ok {
		return report.Artifact{}, r.fail(ctx, fail(StageRender, fmt.Errorf("no locale config for %q", code)))
	}

	extraction, serr := p.extract(ctx, tr.Text, cfg)
	if serr != nil {
		return report.Artifact{}, r.fail(ctx, serr)
	}
	r.advance(ctx, Extracted)

	artifact := report.Artifact{
		ID:       r.id,
		Filename: report.Filename(cfg.FilenamePrefix, r.id),
		Body: report.Render(report.Input{
			ID:         r.id,
			Locale:     cfg,
			Extraction: extraction,
			Transcript: tr.Text,
		}),
	}
	r.advance(ctx, Rendered)

	if err := p.store.Put(ctx, artifact); err != nil {
		return report.Artifact{}, r.fail(ctx, fail(StageStore, err))
	}
	r.advance(ctx, Completed)

	r.logger.Info(ctx, "Report %s ready in %s", artifact.Filename, time.Since(start).Round(time.Millisecond))
	return artifact, nil
}

func (p *implPipeline) save(ctx context.Context, req Request) (*upload.Stored, *StageError) {
	stored, err := p.intake.Save(ctx, upload.Request{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Audio:       req.Audio,
	})
	if err != nil {
		return nil, fail(StageSave, err)
	}
	return stored, nil
}

// transcribe owns the stored upload: it is released on every exit path.
func (p *implPipeline) transcribe(ctx context.Context, stored *upload.Stored) (transcriber.Result, *StageError) {
	defer stored.Release(ctx)

	var res transcriber.Result
	err := p.pool.run(ctx, func() error {
		var err error
		res, err = p.transcriber.Transcribe(ctx, stored.Path, p.modelSize)
		return err
	})
	if err != nil {
		return transcriber.Result{}, fail(StageTranscribe, err)
	}
	return res, nil
}

// extract calls the model and parses its answer with the resolved locale's keys.
// An empty answer fails the stage the same way a transport error does.
func (p *implPipeline) extract(ctx context.Context, transcript string, cfg locale.Config) (extractor.Result, *StageError) {
	var raw map[string]any
	err := p.pool.run(ctx, func() error {
		var err error
		raw, err = p.extractor.Extract(ctx, transcript, cfg.Code)
		return err
	})
	if err == nil && len(raw) == 0 {
		err = extractor.ErrEmptyResponse
	}
	if err != nil {
		return extractor.Result{}, fail(StageExtract, err)
	}

	return extractor.Parse(raw, cfg), nil
}
