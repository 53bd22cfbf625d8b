package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dailyjournal-app/daily-journal/internal/handlers"
)

func SetupRoutes(r *chi.Mux, auth *handlers.AuthHandler, journal *handlers.JournalHandler, requireAuth func(http.Handler) http.Handler) {
	// Auth routes (no token required)
	r.Post("/api/auth/register", auth.Register)
	r.Post("/api/auth/login", auth.Login)

	// Journaling routes (token required)
	r.Route("/api/journals", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", journal.Create)
		r.Get("/", journal.List)
		r.Put("/{id}", journal.Update)
		r.Delete("/{id}", journal.Delete)
	})
}
