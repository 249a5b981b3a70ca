package get_blackouts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/service/availability"
)

const (
	msgInvalidVenueID = "некорректный ID салона"
	msgVenueNotFound  = "салон не найден"
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

// Handle GET /api/v1/venues/{venueId}/blackouts
// Возвращает актуальные и будущие блокировки салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("GET /venues/{id}/blackouts - Invalid venue ID: %s", vars["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	blackouts, err := h.service.ListBlackouts(r.Context(), venueID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/blackouts - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id}/blackouts - Failed to list blackouts: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/blackouts - Retrieved %d blackouts for venue_id=%d", len(blackouts), venueID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBlackoutList(blackouts))
}
