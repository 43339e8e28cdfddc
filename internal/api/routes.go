package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"calendrica/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health                              liveness + database check
//	GET  /api/v1/calendars                    registered calendars
//	GET  /api/v1/sites                        configured observation sites
//	GET  /api/v1/convert/{calendar}           fixed date -> calendar
//	GET  /api/v1/convert/{calendar}/fixed     calendar -> fixed date
//	GET  /api/v1/today/{calendar}             current date in a calendar
//	GET  /api/v1/easter/{year}                Easter (gregorian|orthodox)
//	GET  /api/v1/events/{year}                stored events of a year
//	GET  /api/v1/events/{year}/feed.ics       same, as iCalendar
//	POST /api/v1/events/{year}/generate       recompute a year (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendars", handlers.ListCalendars)
		r.Get("/sites", handlers.ListSites)
		r.Get("/convert/{calendar}", handlers.ConvertFromFixed)
		r.Get("/convert/{calendar}/fixed", handlers.ConvertToFixed)
		r.Get("/today/{calendar}", handlers.Today)
		r.Get("/easter/{year}", handlers.Easter)
		r.Get("/events/{year}", handlers.GetEvents)
		r.Get("/events/{year}/feed.ics", handlers.GetEventsFeed)

		r.Group(func(r chi.Router) {
			r.Use(RequireAPIKey(cfg, logger))
			r.Post("/events/{year}/generate", handlers.GenerateEvents)
		})
	})

	return r
}
