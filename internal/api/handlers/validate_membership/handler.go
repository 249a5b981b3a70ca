package validate_membership

import (
	"errors"
	"net/http"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCode        = "код членства обязателен"
)

// ValidateRequest HTTP request model
type ValidateRequest struct {
	Code string `json:"code"`
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/membership/validate
// Проверка кода членства перед подачей заявки. Неизвестный или
// неактивный код возвращает valid=false, а не ошибку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /membership/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ValidateMembership(r.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /membership/validate - Missing code")
			handlers.RespondBadRequest(w, msgMissingCode)

		default:
			h.logger.Error("POST /membership/validate - Failed to validate code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /membership/validate - Code checked: valid=%t", result.Valid)
	handlers.RespondJSON(w, http.StatusOK, result)
}
