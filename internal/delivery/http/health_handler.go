package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/securecheck/securecheck-webserver/internal/database"
)

type healthHandler struct {
	dbClient *database.DatabaseClient
}

func NewHealthHandler(r chi.Router, dbClient *database.DatabaseClient) {
	handler := &healthHandler{
		dbClient,
	}

	r.Get("/healthz", HandlerFunc(handler.GetHealth).ServeHTTP)
}

// Probes the store by counting the rows of the traffic table
func (h *healthHandler) GetHealth(w http.ResponseWriter, r *http.Request) *HandlerError {
	total, err := h.dbClient.StopRecordUseCase().Count(r.Context())
	if err != nil {
		return NewHandlerError("database unavailable: "+err.Error(), http.StatusServiceUnavailable)
	}

	respond(w, r, map[string]interface{}{
		"table":      h.dbClient.Table(),
		"total_rows": total,
	}, "database connection is healthy")
	return nil
}
