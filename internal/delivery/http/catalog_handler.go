package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/securecheck/securecheck-webserver/internal/catalog"
	"github.com/securecheck/securecheck-webserver/internal/database"
)

type catalogHandler struct {
	dbClient *database.DatabaseClient
}

func NewCatalogHandler(r chi.Router, dbClient *database.DatabaseClient) {
	handler := &catalogHandler{
		dbClient,
	}

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", HandlerFunc(handler.GetCatalog).ServeHTTP)
		r.Get("/run", HandlerFunc(handler.RunQuery).ServeHTTP)
		r.Post("/run", HandlerFunc(handler.RunQuery).ServeHTTP)
	})
}

type catalogRunRequest struct {
	Label string `json:"label"`
}

func (req *catalogRunRequest) Bind(r *http.Request) error {
	return nil
}

// Lists the catalog labels in display order
func (h *catalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) *HandlerError {
	labels := h.dbClient.CatalogUseCase().Labels()
	respond(w, r, labels, "returned all catalog queries")
	return nil
}

// Runs the catalog query named by the label query parameter or request body
func (h *catalogHandler) RunQuery(w http.ResponseWriter, r *http.Request) *HandlerError {
	label := r.URL.Query().Get("label")
	if r.Method == http.MethodPost {
		req := &catalogRunRequest{}
		herr := bindRequest(r, req, func(values url.Values) {
			req.Label = values.Get("label")
		})
		if herr != nil {
			return herr
		}
		if req.Label != "" {
			label = req.Label
		}
	}

	if label == "" {
		return NewHandlerError("invalid request, must pass in a query label", http.StatusBadRequest)
	}

	result, err := h.dbClient.CatalogUseCase().RunCatalogQuery(r.Context(), label)
	if errors.Is(err, catalog.ErrUnknownQuery) {
		return NewHandlerError(err.Error(), http.StatusNotFound)
	}
	if err != nil {
		return NewHandlerError(err.Error(), http.StatusInternalServerError)
	}

	respond(w, r, result, "ran catalog query")
	return nil
}
