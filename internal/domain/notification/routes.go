package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capturemoments/capture-api/internal/middleware"
	"github.com/capturemoments/capture-api/internal/pkg/jwt"
)

// Routes registers notification routes
func Routes(handler *Handler, jwtService *jwt.Service) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))

		r.Get("/", handler.List)
		r.Get("/unread", handler.UnreadCount)
		r.Get("/stream", handler.Stream)
		r.Post("/{id}/read", handler.MarkRead)
		r.Post("/read-all", handler.MarkAllRead)
	})

	return r
}
