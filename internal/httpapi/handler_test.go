package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-report/internal/report"
	"github.com/nguyentantai21042004/meeting-report/internal/store"
)

// fakePipeline stores a fixed report, or fails with err.
type fakePipeline struct {
	store store.Store
	err   error
	got   pipeline.Request
	audio string
}

func (f *fakePipeline) Run(ctx context.Context, req pipeline.Request) (report.Artifact, error) {
	f.got = req
	data, _ := io.ReadAll(req.Audio)
	f.audio = string(data)
	if f.err != nil {
		return report.Artifact{}, f.err
	}
	id := report.NewID()
	a := report.Artifact{ID: id, Filename: report.Filename("report", id), Body: "# Audio Analysis Report - " + id}
	if err := f.store.Put(ctx, a); err != nil {
		return report.Artifact{}, err
	}
	return a, nil
}

func newTestServer(t *testing.T, pipeErr error, maxUpload int64) (http.Handler, *fakePipeline) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "reports"), logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	fp := &fakePipeline{store: st, err: pipeErr}
	return New(fp, st, logger.Nop(), maxUpload), fp
}

func uploadRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(content))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-report", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.Detail
}

func TestGenerateReport(t *testing.T) {
	h, fp := newTestServer(t, nil, 0)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, uploadRequest(t, "audio", "meeting.wav", "RIFFdata"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("Content-Type = %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment; filename=report_") || !strings.HasSuffix(cd, ".md") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "# Audio Analysis Report - ") {
		t.Errorf("body = %q", rec.Body.String())
	}
	if fp.got.Filename != "meeting.wav" || fp.audio != "RIFFdata" {
		t.Errorf("pipeline got filename=%q audio=%q", fp.got.Filename, fp.audio)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}
}

func TestGenerateReportStageFailure(t *testing.T) {
	stageErr := &pipeline.StageError{Stage: pipeline.StageTranscribe, Cause: errors.New("model crashed")}
	h, _ := newTestServer(t, stageErr, 0)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, uploadRequest(t, "audio", "meeting.wav", "x"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if d := decodeDetail(t, rec); d != "Transcription failed: model crashed" {
		t.Errorf("detail = %q", d)
	}
}

func TestGenerateReportMissingField(t *testing.T) {
	h, _ := newTestServer(t, nil, 0)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, uploadRequest(t, "file", "meeting.wav", "x"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if d := decodeDetail(t, rec); d == "" {
		t.Error("detail should be set")
	}
}

func TestGenerateReportNotMultipart(t *testing.T) {
	h, _ := newTestServer(t, nil, 0)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-report", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestGenerateReportTooLarge(t *testing.T) {
	h, _ := newTestServer(t, nil, 1024)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, uploadRequest(t, "audio", "meeting.wav", strings.Repeat("x", 4096)))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t, nil, 0)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
}

func TestGenerateReportWrongMethod(t *testing.T) {
	h, _ := newTestServer(t, nil, 0)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/generate-report", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
