package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers pricing routes
func Routes(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/quote", handler.GetQuote)
	return r
}
