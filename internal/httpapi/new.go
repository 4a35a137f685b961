package httpapi

import (
	"net/http"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-report/internal/store"
)

const (
	audioField        = "audio"
	multipartMemLimit = 32 << 20
)

type implHandler struct {
	pipeline       pipeline.Pipeline
	store          store.Store
	logger         logger.Logger
	maxUploadBytes int64
}

// New returns the HTTP handler exposing the report API.
func New(p pipeline.Pipeline, s store.Store, log logger.Logger, maxUploadBytes int64) http.Handler {
	h := &implHandler{
		pipeline:       p,
		store:          s,
		logger:         log,
		maxUploadBytes: maxUploadBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /api/v1/generate-report", h.generateReport)

	return h.withRequestID(mux)
}
