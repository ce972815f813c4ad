package list_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/catalog"
)

const (
	msgInvalidMechanicID = "некорректный ID механика"
	msgMechanicNotFound  = "механик не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/mechanics/{mechanicId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mechanicID, err := strconv.ParseInt(vars["mechanicId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /mechanics/{id}/services - Invalid mechanic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMechanicID)
		return
	}

	result, err := h.service.ListServices(r.Context(), mechanicID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMechanicNotFound):
			h.logger.Warn("GET /mechanics/{id}/services - Mechanic not found: mechanic_id=%d", mechanicID)
			handlers.RespondNotFound(w, msgMechanicNotFound)

		default:
			h.logger.Error("GET /mechanics/{id}/services - Failed to list services: mechanic_id=%d, error=%v",
				mechanicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /mechanics/{id}/services - Services listed successfully: mechanic_id=%d, total=%d",
		mechanicID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
