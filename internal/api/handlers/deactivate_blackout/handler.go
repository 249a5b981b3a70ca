package deactivate_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/service/availability"
)

const (
	msgInvalidBlackoutID = "некорректный ID блокировки"
	msgBlackoutNotFound  = "блокировка не найдена"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blackouts/{blackoutId}
// Блокировка деактивируется, запись сохраняется для истории
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blackoutID, err := strconv.ParseInt(vars["blackoutId"], 10, 64)
	if err != nil || blackoutID <= 0 {
		h.logger.Warn("DELETE /blackouts/{id} - Invalid blackout ID: %s", vars["blackoutId"])
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	if err := h.service.DeactivateBlackout(r.Context(), blackoutID); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlackoutNotFound):
			h.logger.Warn("DELETE /blackouts/{id} - Blackout not found: blackout_id=%d", blackoutID)
			handlers.RespondNotFound(w, msgBlackoutNotFound)

		default:
			h.logger.Error("DELETE /blackouts/{id} - Failed to deactivate blackout: blackout_id=%d, error=%v", blackoutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blackouts/{id} - Blackout deactivated: blackout_id=%d", blackoutID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
