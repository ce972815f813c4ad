package create_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMechanicID  = "некорректный ID механика"
	msgMechanicNotFound   = "механик не найден"
	msgInvalidDuration    = "некорректная длительность услуги, ожидается HH:MM или HH:MM:SS"
	msgInvalidInput       = "некорректные данные услуги"
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

// Handle POST /api/v1/mechanics/{mechanicId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mechanicID, err := strconv.ParseInt(vars["mechanicId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /mechanics/{id}/services - Invalid mechanic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMechanicID)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /mechanics/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.CreateService(r.Context(), req.ToServiceRequest(mechanicID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMechanicNotFound):
			h.logger.Warn("POST /mechanics/{id}/services - Mechanic not found: mechanic_id=%d", mechanicID)
			handlers.RespondNotFound(w, msgMechanicNotFound)

		case errors.Is(err, catalog.ErrInvalidDuration):
			h.logger.Warn("POST /mechanics/{id}/services - Invalid duration: mechanic_id=%d, duration=%q",
				mechanicID, req.Duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /mechanics/{id}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /mechanics/{id}/services - Failed to create service: mechanic_id=%d, error=%v",
				mechanicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /mechanics/{id}/services - Service created successfully: service_id=%d, mechanic_id=%d",
		service.ID, mechanicID)
	handlers.RespondJSON(w, http.StatusCreated, service)
}
