package photographer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

// Routes registers photographer routes. slotsHandler serves the
// availability catalog under /{id}/slots and is owned by the booking
// domain.
func Routes(handler *Handler, jwtService *jwt.Service, slotsHandler http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.List)
	r.Get("/recommendations", handler.Recommend)
	r.Get("/{id}", handler.Get)
	r.Get("/{id}/slots", slotsHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))

		r.Get("/me", handler.GetMine)
		r.With(middleware.RequirePhotographer).Post("/", handler.Create)
		r.Put("/{id}", handler.Update)
	})

	return r
}
