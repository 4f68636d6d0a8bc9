package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

// Routes registers payment routes
func Routes(handler *Handler, jwtService *jwt.Service) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))

		r.Post("/intent", handler.CreateIntent)
		r.Post("/{id}/confirm", handler.Confirm)
		r.Get("/booking/{id}", handler.GetByBooking)
	})

	return r
}
