package get_mechanic

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/accounts"
)

const (
	msgInvalidMechanicID = "некорректный ID механика"
	msgNotFound          = "механик не найден"
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

// Handle GET /api/v1/mechanics/{mechanicId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mechanicID, err := strconv.ParseInt(vars["mechanicId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /mechanics/{id} - Invalid mechanic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMechanicID)
		return
	}

	mechanic, err := h.service.GetMechanic(r.Context(), mechanicID)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrMechanicNotFound):
			h.logger.Warn("GET /mechanics/{id} - Mechanic not found: mechanic_id=%d", mechanicID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /mechanics/{id} - Failed to get mechanic: mechanic_id=%d, error=%v", mechanicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /mechanics/{id} - Mechanic retrieved successfully: mechanic_id=%d", mechanicID)
	handlers.RespondJSON(w, http.StatusOK, mechanic)
}
