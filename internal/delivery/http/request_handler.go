package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/securecheck/securecheck-webserver/internal/logging"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) *HandlerError

type HandlerError struct {
	Message    string
	StatusCode int
}

func ResponseError(message string, code int) HandlerError {
	return HandlerError{
		Message:    message,
		StatusCode: code,
	}
}

func NewHandlerError(message string, code int) *HandlerError {
	return &HandlerError{
		Message:    message,
		StatusCode: code,
	}
}

func (fn HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			logger := logging.GetLogger()
			logger.Zerolog().Error().
				Str("path", r.URL.Path).
				Interface("panic", rec).
				Msg("recovered from handler panic")
			logger.WriteCrashFile(fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, rec))
			handleHTTPError(w, r, ResponseError("Internal Server Error", http.StatusInternalServerError))
		}
	}()

	if handlerError := fn(w, r); handlerError != nil {
		handleHTTPError(w, r, *handlerError)
	}
}

func handleHTTPError(w http.ResponseWriter, r *http.Request, err HandlerError) {
	render.Status(r, err.StatusCode)
	render.JSON(w, r, map[string]interface{}{
		"data":    make([]interface{}, 0),
		"message": err.Message,
	})
}

// respond writes the {"data": ..., "message": ...} envelope with a 200 status.
func respond(w http.ResponseWriter, r *http.Request, data interface{}, message string) {
	render.JSON(w, r, map[string]interface{}{
		"data":    data,
		"message": message,
	})
}
