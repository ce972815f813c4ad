package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-GarageService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotFound       = "временной слот не найден"
	msgNoSlotsAvailable   = "нет доступных слотов"
	msgNotEnoughSlots     = "недостаточно подряд идущих свободных слотов для услуги"
	msgSlotConflict       = "слот уже занят, выберите другое время"
	msgInvalidDuration    = "услуга имеет некорректную длительность"
	msgInvalidInput       = "некорректные параметры записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: mechanic_id=%d, service_id=%d",
				req.MechanicID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Slot not found: slot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createAppointment.ErrNoSlotsAvailable):
			h.logger.Warn("POST /appointments - No slots available: mechanic_id=%d, slot_id=%d",
				req.MechanicID, req.TimeSlotID)
			handlers.RespondNotFound(w, msgNoSlotsAvailable)

		case errors.Is(err, createAppointment.ErrNotEnoughAdjacentSlots):
			h.logger.Warn("POST /appointments - Not enough adjacent slots: mechanic_id=%d, slot_id=%d",
				req.MechanicID, req.TimeSlotID)
			handlers.RespondBadRequest(w, msgNotEnoughSlots)

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: client_id=%d, slot_id=%d", clientID, req.TimeSlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrInvalidServiceDuration):
			h.logger.Warn("POST /appointments - Invalid service duration: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, mechanic_id=%d, error=%v",
				clientID, req.MechanicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d",
		result.AppointmentID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
