package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

// Routes registers booking routes
func Routes(handler *Handler, jwtService *jwt.Service) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))

		r.Post("/", handler.Create)
		r.Get("/my", handler.ListMy)
		r.Get("/{id}", handler.GetByID)
		r.Patch("/{id}/status", handler.UpdateStatus)
	})

	return r
}
