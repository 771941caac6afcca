package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"thecommons/internal/delivery/http/controllers"
	"thecommons/internal/delivery/http/middleware"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Towns      *controllers.TownController
	Events     *controllers.EventController
	Bulletin   *controllers.BulletinController
	Businesses *controllers.BusinessController
	Tags       *controllers.TagController
	Health     *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Regions
	mux.HandleFunc("GET /regions/{region}/towns", c.Towns.ListRegionTowns)
	mux.HandleFunc("GET /regions/{region}/events", c.Events.ListRegionEvents)

	// Towns
	mux.HandleFunc("GET /towns/{town}", c.Towns.GetTownPage)
	mux.HandleFunc("GET /towns/{town}/events", c.Events.ListTownEvents)
	mux.HandleFunc("GET /towns/{town}/events.ics", c.Events.TownCalendar)
	mux.HandleFunc("GET /towns/{town}/posts", c.Bulletin.ListPosts)
	mux.HandleFunc("POST /towns/{town}/posts", c.Bulletin.CreatePost)
	mux.HandleFunc("GET /towns/{town}/businesses", c.Businesses.ListBusinesses)

	mux.HandleFunc("GET /events/{eventID}", c.Events.GetEventByID)
	mux.HandleFunc("GET /tags", c.Tags.ListTags)

	// Ops
	mux.HandleFunc("GET /healthz", c.Health.Health)
	mux.Handle("GET /metrics", metricsHandler)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with the middleware chain:
// request id, logging, CORS, then per-route metrics.
func NewHandler(mux *http.ServeMux, logger *slog.Logger, allowedOrigins []string) http.Handler {
	var h http.Handler = middleware.Metrics(mux)
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
