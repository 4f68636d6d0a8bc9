package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

// Routes registers admin dashboard routes
func Routes(handler *Handler, jwtService *jwt.Service) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))
		r.Use(middleware.RequireAdmin)

		r.Get("/dashboard", handler.Stats)
	})

	return r
}
