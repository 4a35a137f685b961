package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-report/internal/report"
)

type ctxKey struct{}

// statusResponse is the JSON body of health and error responses.
type statusResponse struct {
	Status string `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (h *implHandler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)

		log := h.logger.With("req_id", reqID)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, log)))
		log.Info(r.Context(), "%s %s from %s in %s", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start).Round(time.Millisecond))
	})
}

func (h *implHandler) log(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(ctxKey{}).(logger.Logger); ok {
		return l
	}
	return h.logger
}

func (h *implHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *implHandler) generateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.log(ctx)

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, statusResponse{Detail: "Upload exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes"})
			return
		}
		log.Warn(ctx, "Invalid multipart upload: %v", err)
		writeJSON(w, http.StatusUnprocessableEntity, statusResponse{Detail: "Field 'audio' with an audio file is required"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(audioField)
	if err != nil {
		log.Warn(ctx, "Missing %q upload: %v", audioField, err)
		writeJSON(w, http.StatusUnprocessableEntity, statusResponse{Detail: "Field 'audio' with an audio file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	artifact, err := h.pipeline.Run(ctx, pipeline.Request{
		Filename:    header.Filename,
		ContentType: contentType,
		Audio:       file,
	})
	if err != nil {
		detail := err.Error()
		var se *pipeline.StageError
		if errors.As(err, &se) {
			detail = se.Detail()
		}
		log.Error(ctx, "Report generation failed: %s", detail)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Detail: detail})
		return
	}

	body, err := h.store.Take(ctx, artifact.ID)
	if err != nil {
		log.Error(ctx, "Failed to read report %s: %v", artifact.ID, err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Detail: "Failed to read report: " + err.Error()})
		return
	}

	w.Header().Set("Content-Type", mime.FormatMediaType(report.MediaType, map[string]string{"charset": "utf-8"}))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Warn(ctx, "Failed to write report %s: %v", artifact.ID, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
