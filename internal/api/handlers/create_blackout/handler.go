package create_blackout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidVenueID     = "некорректный ID салона"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidBlackout    = "некорректные данные блокировки"
	msgVenueNotFound      = "салон не найден"
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

// Handle POST /api/v1/venues/{venueId}/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("POST /venues/{id}/blackouts - Invalid venue ID: %s", vars["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blackout, err := req.ToDomain(venueID)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/blackouts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	created, err := h.service.CreateBlackout(r.Context(), blackout)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/blackouts - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, availability.ErrInvalidBlackout):
			h.logger.Warn("POST /venues/{id}/blackouts - Invalid blackout: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidBlackout)

		default:
			h.logger.Error("POST /venues/{id}/blackouts - Failed to create blackout: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/blackouts - Blackout created: blackout_id=%d, venue_id=%d", created.ID, venueID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
