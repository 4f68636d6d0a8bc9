package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

// Routes registers auth routes
func Routes(handler *Handler, jwtService *jwt.Service) http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
	r.Post("/refresh", handler.Refresh)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))
		r.Get("/me", handler.Me)
	})

	return r
}
