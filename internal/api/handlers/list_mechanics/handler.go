package list_mechanics

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/mechanics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMechanics(r.Context())
	if err != nil {
		h.logger.Error("GET /mechanics - Failed to list mechanics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /mechanics - Mechanics listed successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
