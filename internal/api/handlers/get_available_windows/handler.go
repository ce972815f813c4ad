package get_available_windows

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	getAvailableWindows "github.com/m04kA/SMC-GarageService/internal/usecase/get_available_windows"
)

const (
	msgInvalidMechanicID = "некорректный ID механика"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgServiceNotFound   = "услуга не найдена"
	msgInvalidDuration   = "услуга имеет некорректную длительность"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableWindowsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableWindowsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/mechanics/{mechanicId}/services/{serviceId}/available_time_slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mechanicID, err := strconv.ParseInt(vars["mechanicId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /mechanics/{id}/services/{sid}/available_time_slots - Invalid mechanic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMechanicID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /mechanics/{id}/services/{sid}/available_time_slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableWindows.Request{
		MechanicID: mechanicID,
		ServiceID:  serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableWindows.ErrServiceNotFound):
			h.logger.Warn("GET /mechanics/{id}/services/{sid}/available_time_slots - Service not found: mechanic_id=%d, service_id=%d",
				mechanicID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableWindows.ErrInvalidServiceDuration):
			h.logger.Warn("GET /mechanics/{id}/services/{sid}/available_time_slots - Invalid duration: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableWindows.ErrInvalidInput):
			h.logger.Warn("GET /mechanics/{id}/services/{sid}/available_time_slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /mechanics/{id}/services/{sid}/available_time_slots - Failed to get windows: mechanic_id=%d, service_id=%d, error=%v",
				mechanicID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /mechanics/{id}/services/{sid}/available_time_slots - Windows retrieved: mechanic_id=%d, service_id=%d, total=%d",
		mechanicID, serviceID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
