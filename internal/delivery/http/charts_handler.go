package http

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/securecheck/securecheck-webserver/internal/charts"
	"github.com/securecheck/securecheck-webserver/internal/database"
	"github.com/securecheck/securecheck-webserver/internal/database/usecase"
	"github.com/securecheck/securecheck-webserver/internal/logging"
	"github.com/securecheck/securecheck-webserver/internal/s3"
)

type chartsHandler struct {
	dbClient     *database.DatabaseClient
	s3Repository *s3.S3Repository
}

// NewChartsHandler registers the chart routes. The snapshot route only exists when
// s3Repository is non-nil.
func NewChartsHandler(r chi.Router, dbClient *database.DatabaseClient, s3Repository *s3.S3Repository) {
	handler := &chartsHandler{
		dbClient:     dbClient,
		s3Repository: s3Repository,
	}

	r.Route("/charts", func(r chi.Router) {
		r.Get("/violations", HandlerFunc(handler.GetViolationChart).ServeHTTP)
		if s3Repository != nil {
			r.Post("/violations/snapshot", HandlerFunc(handler.SnapshotViolationChart).ServeHTTP)
		}
	})
}

func (h *chartsHandler) renderRequest(r *http.Request) (string, []byte, *HandlerError) {
	limit, herr := queryInt(r, "limit", usecase.DefaultPreviewLimit)
	if herr != nil {
		return "", nil, herr
	}

	format, err := charts.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		return "", nil, NewHandlerError(err.Error(), http.StatusBadRequest)
	}

	counts, err := h.dbClient.StopRecordUseCase().ViolationCounts(r.Context(), limit)
	if err != nil {
		return "", nil, NewHandlerError(err.Error(), http.StatusInternalServerError)
	}

	image, err := charts.RenderViolationsBytes(counts, format)
	if err != nil {
		return "", nil, NewHandlerError(err.Error(), http.StatusInternalServerError)
	}
	return format, image, nil
}

// Draws the violation frequency chart over the preview sample
func (h *chartsHandler) GetViolationChart(w http.ResponseWriter, r *http.Request) *HandlerError {
	format, image, herr := h.renderRequest(r)
	if herr != nil {
		return herr
	}

	w.Header().Set("Content-Type", charts.ContentType(format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image); err != nil {
		logging.GetLogger().Zerolog().Warn().Err(err).Msg("failed to write chart response")
	}
	return nil
}

// Uploads the violation chart to S3 and responds with a presigned link to it
func (h *chartsHandler) SnapshotViolationChart(w http.ResponseWriter, r *http.Request) *HandlerError {
	format, image, herr := h.renderRequest(r)
	if herr != nil {
		return herr
	}

	snapshot, err := h.s3Repository.UploadSnapshot(r.Context(), bytes.NewBuffer(image), format, charts.ContentType(format))
	if err != nil {
		return NewHandlerError(err.Error(), http.StatusBadGateway)
	}

	render.Status(r, http.StatusCreated)
	respond(w, r, snapshot, "uploaded chart snapshot")
	return nil
}
