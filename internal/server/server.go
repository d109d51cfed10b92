package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"shaadiAi/internal/budget"
	"shaadiAi/internal/planner"
	"shaadiAi/internal/schedule"
	"shaadiAi/internal/vendors"
)

// New constructs the HTTP server with routes and middleware.
func New(port string, plannerHandler planner.Handler, budgetHandler budget.Handler, vendorHandler vendors.Handler, scheduleHandler schedule.Handler) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/blueprint", func(r chi.Router) {
			r.Post("/", plannerHandler.GenerateBlueprint)
			r.Post("/images", plannerHandler.GenerateThemeImages)
		})
		r.Route("/preferences/{key}", func(r chi.Router) {
			r.Get("/", plannerHandler.GetPreferences)
			r.Put("/", plannerHandler.PutPreferences)
		})
		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", vendorHandler.List)
			r.Get("/{id}", vendorHandler.Get)
		})
		r.Route("/budget", func(r chi.Router) {
			r.Get("/plan", budgetHandler.Plan)
			r.Route("/items", func(r chi.Router) {
				r.Get("/", budgetHandler.ListItems)
				r.Post("/", budgetHandler.CreateItem)
				r.Patch("/{id}", budgetHandler.UpdateItem)
				r.Delete("/{id}", budgetHandler.DeleteItem)
			})
		})
		r.Route("/schedule", func(r chi.Router) {
			r.Post("/events", scheduleHandler.CreateEvent)
			r.Post("/invites", scheduleHandler.SendInvites)
		})
		r.Get("/events", plannerHandler.StreamEvents)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// No write timeout: /api/events holds the response open.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Msg("server ready")
	return srv
}
