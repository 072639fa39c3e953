package http

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/securecheck/securecheck-webserver/internal/database"
	"github.com/securecheck/securecheck-webserver/internal/models"
)

type stopRecordsHandler struct {
	dbClient *database.DatabaseClient
}

func NewStopRecordsHandler(r chi.Router, dbClient *database.DatabaseClient) {
	handler := &stopRecordsHandler{
		dbClient,
	}

	r.Route("/stops", func(r chi.Router) {
		r.Get("/preview", HandlerFunc(handler.GetPreview).ServeHTTP)
		r.Get("/count", HandlerFunc(handler.GetCount).ServeHTTP)
		r.Post("/lookup", HandlerFunc(handler.LookupStop).ServeHTTP)
		r.Post("/predict", HandlerFunc(handler.PredictOutcome).ServeHTTP)
	})
}

type lookupRequest struct {
	models.StopLookupForm
}

func (req *lookupRequest) Bind(r *http.Request) error {
	return nil
}

type predictRequest struct {
	models.PredictionRequest
}

func (req *predictRequest) Bind(r *http.Request) error {
	return nil
}

// queryInt reads an integer query parameter, returning fallback when it is absent.
func queryInt(r *http.Request, name string, fallback int) (int, *HandlerError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewHandlerError("invalid request, "+name+" must be an integer", http.StatusBadRequest)
	}
	return value, nil
}

// bindRequest decodes a JSON or form body into v. An empty body leaves v untouched.
func bindRequest(r *http.Request, v render.Binder, fromForm func(url.Values)) *HandlerError {
	if render.GetRequestContentType(r) == render.ContentTypeForm {
		if err := r.ParseForm(); err != nil {
			return NewHandlerError("invalid request body: "+err.Error(), http.StatusBadRequest)
		}
		fromForm(r.PostForm)
		return nil
	}

	// Anything that is not a form is read as JSON, including a missing Content-Type.
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		return NewHandlerError("invalid request body: "+err.Error(), http.StatusBadRequest)
	}
	if err := v.Bind(r); err != nil {
		return NewHandlerError("invalid request: "+err.Error(), http.StatusBadRequest)
	}
	return nil
}

func (h *stopRecordsHandler) GetPreview(w http.ResponseWriter, r *http.Request) *HandlerError {
	limit, herr := queryInt(r, "limit", 0)
	if herr != nil {
		return herr
	}

	result, err := h.dbClient.StopRecordUseCase().Preview(r.Context(), limit)
	if err != nil {
		return NewHandlerError(err.Error(), http.StatusInternalServerError)
	}

	respond(w, r, result, "previewed "+strconv.Itoa(len(result.Rows))+" stop records")
	return nil
}

func (h *stopRecordsHandler) GetCount(w http.ResponseWriter, r *http.Request) *HandlerError {
	total, err := h.dbClient.StopRecordUseCase().Count(r.Context())
	if err != nil {
		return NewHandlerError(err.Error(), http.StatusInternalServerError)
	}

	respond(w, r, map[string]int64{"total_rows": total}, "counted stop records")
	return nil
}

func (h *stopRecordsHandler) LookupStop(w http.ResponseWriter, r *http.Request) *HandlerError {
	req := &lookupRequest{}
	herr := bindRequest(r, req, func(values url.Values) {
		req.StopLookupForm = lookupFormFromValues(values)
	})
	if herr != nil {
		return herr
	}

	result, err := h.dbClient.StopRecordUseCase().LookupStop(r.Context(), &req.StopLookupForm)
	if err != nil {
		return NewHandlerError(err.Error(), http.StatusInternalServerError)
	}

	message := "found a matching stop record"
	if result.Status == models.LookupStatusNoMatch {
		message = "no record matched the given filters"
	}
	respond(w, r, result, message)
	return nil
}

func (h *stopRecordsHandler) PredictOutcome(w http.ResponseWriter, r *http.Request) *HandlerError {
	req := &predictRequest{}
	herr := bindRequest(r, req, func(values url.Values) {
		req.PredictionRequest = predictionFromValues(values)
	})
	if herr != nil {
		return herr
	}

	result, err := h.dbClient.StopRecordUseCase().PredictOutcome(r.Context(), &req.PredictionRequest)
	if err != nil {
		return NewHandlerError(err.Error(), http.StatusInternalServerError)
	}

	switch result.Status {
	case models.LookupStatusMissingVehicleNumber:
		render.Status(r, http.StatusBadRequest)
		respond(w, r, result, "invalid request, must pass in a vehicle number")
	case models.LookupStatusNoMatch:
		respond(w, r, result, "no record found for the vehicle number")
	default:
		respond(w, r, result, "predicted stop outcome")
	}
	return nil
}

func lookupFormFromValues(values url.Values) models.StopLookupForm {
	form := models.StopLookupForm{
		StopDate:         values.Get("stop_date"),
		StopTime:         values.Get("stop_time"),
		CountryName:      values.Get("country_name"),
		DriverGender:     values.Get("driver_gender"),
		DriverRace:       values.Get("driver_race"),
		SearchConducted:  values.Get("search_conducted"),
		SearchType:       values.Get("search_type"),
		StopDuration:     values.Get("stop_duration"),
		DrugsRelatedStop: values.Get("drugs_related_stop"),
		VehicleNumber:    values.Get("vehicle_number"),
	}
	if age, err := strconv.Atoi(values.Get("driver_age")); err == nil {
		form.DriverAge = &age
	}
	return form
}

func predictionFromValues(values url.Values) models.PredictionRequest {
	age, _ := strconv.Atoi(values.Get("driver_age"))
	return models.PredictionRequest{
		VehicleNumber:    values.Get("vehicle_number"),
		StopTime:         values.Get("stop_time"),
		DriverAge:        age,
		DriverGender:     values.Get("driver_gender"),
		SearchConducted:  values.Get("search_conducted"),
		SearchType:       values.Get("search_type"),
		DrugsRelatedStop: values.Get("drugs_related_stop"),
		StopDuration:     values.Get("stop_duration"),
	}
}
