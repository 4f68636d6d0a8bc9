package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

// Routes registers review routes
func Routes(handler *Handler, jwtService *jwt.Service) http.Handler {
	r := chi.NewRouter()

	r.Get("/photographer/{id}", handler.ListByPhotographer)
	r.Get("/photographer/{id}/summary", handler.Summary)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))
		r.Post("/", handler.Create)
	})

	return r
}
