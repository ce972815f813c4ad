package create_mechanic

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/accounts"
	"github.com/m04kA/SMC-GarageService/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserNotFound       = "пользователь не найден"
	msgNotMechanic        = "пользователь не является механиком"
	msgInvalidInput       = "некорректные данные гаража"
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

// Handle POST /api/v1/mechanics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMechanicProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /mechanics - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	mechanic, err := h.service.CreateMechanicProfile(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUserNotFound):
			h.logger.Warn("POST /mechanics - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, accounts.ErrNotMechanic):
			h.logger.Warn("POST /mechanics - User is not a mechanic: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgNotMechanic)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /mechanics - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /mechanics - Failed to create mechanic profile: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /mechanics - Mechanic profile created successfully: mechanic_id=%d, user_id=%d",
		mechanic.ID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, mechanic)
}
