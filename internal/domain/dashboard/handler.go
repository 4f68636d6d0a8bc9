package dashboard

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/capturemoments/capture-api/internal/pkg/response"
)

// Handler handles admin dashboard HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a dashboard handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Stats handles GET /admin/dashboard
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to collect dashboard stats")
		response.InternalError(w)
		return
	}

	response.OK(w, stats)
}
