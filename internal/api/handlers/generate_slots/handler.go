package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	generateSlots "github.com/m04kA/SMC-GarageService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMechanicID  = "некорректный ID механика"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMechanicNotFound   = "механик не найден"
	msgInvalidWindow      = "конец окна должен быть позже начала"
	msgInvalidInput       = "некорректные параметры окна"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/mechanics/{mechanicId}/time_slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	mechanicID, err := strconv.ParseInt(vars["mechanicId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /mechanics/{id}/time_slots - Invalid mechanic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMechanicID)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /mechanics/{id}/time_slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(mechanicID)
	if err != nil {
		h.logger.Warn("POST /mechanics/{id}/time_slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrMechanicNotFound):
			h.logger.Warn("POST /mechanics/{id}/time_slots - Mechanic not found: mechanic_id=%d", mechanicID)
			handlers.RespondNotFound(w, msgMechanicNotFound)

		case errors.Is(err, generateSlots.ErrInvalidWindow):
			h.logger.Warn("POST /mechanics/{id}/time_slots - Invalid window: mechanic_id=%d, %s-%s",
				mechanicID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /mechanics/{id}/time_slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /mechanics/{id}/time_slots - Failed to generate slots: mechanic_id=%d, error=%v",
				mechanicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /mechanics/{id}/time_slots - Slots generated successfully: mechanic_id=%d, count=%d",
		mechanicID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(req.Date, result))
}
