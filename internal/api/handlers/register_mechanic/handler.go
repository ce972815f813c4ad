package register_mechanic

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/accounts"
	"github.com/m04kA/SMC-GarageService/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "пользователь с таким email уже зарегистрирован"
	msgInvalidInput       = "некорректные данные механика"
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

// Handle POST /api/v1/mechanics/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterMechanicRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /mechanics/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterMechanic(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrEmailTaken):
			h.logger.Warn("POST /mechanics/register - Email already taken: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /mechanics/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /mechanics/register - Failed to register mechanic: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /mechanics/register - Mechanic registered successfully: mechanic_id=%d, user_id=%d",
		result.Mechanic.ID, result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
