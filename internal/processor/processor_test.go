package processor

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-report/internal/report"
	"github.com/nguyentantai21042004/meeting-report/internal/store"
)

type fakePipeline struct {
	got  pipeline.Request
	body string
	err  error
	s    store.Store
}

func (f *fakePipeline) Run(ctx context.Context, req pipeline.Request) (report.Artifact, error) {
	f.got = req
	if _, err := io.ReadAll(req.Audio); err != nil {
		return report.Artifact{}, err
	}
	if f.err != nil {
		return report.Artifact{}, f.err
	}
	a := report.Artifact{
		ID:       "0123456789abcdef0123456789abcdef",
		Filename: "meeting_report_0123456789abcdef0123456789abcdef.md",
		Body:     f.body,
	}
	if err := f.s.Put(ctx, a); err != nil {
		return report.Artifact{}, err
	}
	return a, nil
}

type dirs struct {
	input, output, archived, reports string
}

func setup(t *testing.T) dirs {
	t.Helper()
	root := t.TempDir()
	d := dirs{
		input:    filepath.Join(root, "input"),
		output:   filepath.Join(root, "output"),
		archived: filepath.Join(root, "archived"),
		reports:  filepath.Join(root, "reports"),
	}
	if err := os.MkdirAll(d.input, 0755); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestProcess(t *testing.T) {
	d := setup(t)
	s, err := store.New(d.reports, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	fp := &fakePipeline{body: "# Meeting Report - x\n\n## Summary\n\nShip it.\n", s: s}
	proc := New(fp, s, Options{OutputDir: d.output, ArchivedDir: d.archived, Docx: true}, logger.Nop())

	src := filepath.Join(d.input, "standup.mp3")
	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := proc.Process(context.Background(), src); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if fp.got.Filename != "standup.mp3" {
		t.Errorf("Filename = %q, want standup.mp3", fp.got.Filename)
	}
	if fp.got.ContentType == "" {
		t.Error("ContentType should never be empty")
	}

	out, err := os.ReadFile(filepath.Join(d.output, "meeting_report_0123456789abcdef0123456789abcdef.md"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if string(out) != fp.body {
		t.Errorf("report = %q, want %q", out, fp.body)
	}
	if _, err := os.Stat(filepath.Join(d.output, "meeting_report_0123456789abcdef0123456789abcdef.docx")); err != nil {
		t.Errorf("docx not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(d.archived, "standup.mp3")); err != nil {
		t.Errorf("recording not archived: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("recording still in input folder")
	}

	n, err := s.Sweep(context.Background(), -time.Hour)
	if err != nil || n != 0 {
		t.Errorf("store should be empty after Process, Sweep() = %d, %v", n, err)
	}
}

func TestProcessFailureKeepsRecording(t *testing.T) {
	d := setup(t)
	s, err := store.New(d.reports, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	stageErr := &pipeline.StageError{Stage: pipeline.StageTranscribe, Cause: errors.New("model missing")}
	fp := &fakePipeline{err: stageErr, s: s}
	proc := New(fp, s, Options{OutputDir: d.output, ArchivedDir: d.archived}, logger.Nop())

	src := filepath.Join(d.input, "broken.wav")
	if err := os.WriteFile(src, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	err = proc.Process(context.Background(), src)
	if !errors.Is(err, pipeline.ErrTranscription) {
		t.Fatalf("Process() error = %v, want ErrTranscription", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("recording should stay in input folder: %v", err)
	}
	if entries, _ := os.ReadDir(d.output); len(entries) != 0 {
		t.Errorf("output folder should be empty, got %d entries", len(entries))
	}
}

func TestProcessMissingFile(t *testing.T) {
	d := setup(t)
	s, err := store.New(d.reports, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	proc := New(&fakePipeline{s: s}, s, Options{OutputDir: d.output}, logger.Nop())
	if err := proc.Process(context.Background(), filepath.Join(d.input, "gone.wav")); err == nil {
		t.Error("Process() should fail for a missing file")
	}
}
