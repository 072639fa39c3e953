package http

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/securecheck/securecheck-webserver/internal/database"
	"github.com/securecheck/securecheck-webserver/internal/logging"
	securecheck_middleware "github.com/securecheck/securecheck-webserver/internal/middleware"
	"github.com/securecheck/securecheck-webserver/internal/s3"
)

const Banner = "SecureCheck Police Post Logs Webserver"

// throttleBacklog is how many requests may wait for an in-flight slot.
const throttleBacklog = 64

type RouterConfig struct {
	AllowedOrigins []string
	MaxInflight    int
	RequestTimeout time.Duration
	// MaxBodyBytes caps request bodies; zero uses the middleware default.
	MaxBodyBytes int64
}

// NewRouter builds the chi router with the middleware stack and every API route
// mounted under /api/v1. s3Repository may be nil, in which case chart snapshots
// are not served.
func NewRouter(cfg RouterConfig, dbClient *database.DatabaseClient, s3Repository *s3.S3Repository) *chi.Mux {
	if cfg.MaxInflight < 1 {
		cfg.MaxInflight = 1
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	router := chi.NewRouter()

	// Simple middleware stack
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(logging.GetLogger().Writer(), "", 0),
		NoColor: true,
	}))
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// Requests beyond MaxInflight wait for a slot until the request timeout.
	router.Use(middleware.ThrottleBacklog(cfg.MaxInflight, throttleBacklog, cfg.RequestTimeout))

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	bodyLimit := &securecheck_middleware.BodySizeMiddleware{MaxBytes: cfg.MaxBodyBytes}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(bodyLimit.BodySizeLimitMiddleware)

		NewHealthHandler(r, dbClient)
		NewStopRecordsHandler(r, dbClient)
		NewCatalogHandler(r, dbClient)
		NewChartsHandler(r, dbClient, s3Repository)
	})

	return router
}
