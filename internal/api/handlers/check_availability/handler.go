package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/internal/service/availability"
)

const (
	msgInvalidConfigurationID = "некорректный ID конфигурации"
	msgMissingDate            = "параметр date обязателен, формат YYYY-MM-DD"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize       = "некорректный параметр partySize"
	msgConfigurationNotFound  = "конфигурация салона не найдена"
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

// Handle GET /api/v1/configurations/{configurationId}/availability
// Query-параметры: date (обязателен), partySize (опционален)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	configurationID, err := strconv.ParseInt(vars["configurationId"], 10, 64)
	if err != nil || configurationID <= 0 {
		h.logger.Warn("GET /configurations/{id}/availability - Invalid configuration ID: %s", vars["configurationId"])
		handlers.RespondBadRequest(w, msgInvalidConfigurationID)
		return
	}

	dateValue := r.URL.Query().Get("date")
	if dateValue == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateValue)
	if err != nil {
		h.logger.Warn("GET /configurations/{id}/availability - Invalid date: %s", dateValue)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Без partySize проверяются только блокировки салона
	partySize := 0
	if v := r.URL.Query().Get("partySize"); v != "" {
		partySize, err = strconv.Atoi(v)
		if err != nil || partySize < 0 {
			h.logger.Warn("GET /configurations/{id}/availability - Invalid partySize: %s", v)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
	}

	reasons, config, err := h.service.CheckConfiguration(r.Context(), configurationID, date, partySize)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrConfigurationNotFound):
			h.logger.Warn("GET /configurations/{id}/availability - Configuration not found: configuration_id=%d", configurationID)
			handlers.RespondNotFound(w, msgConfigurationNotFound)

		default:
			h.logger.Error("GET /configurations/{id}/availability - Check failed: configuration_id=%d, error=%v", configurationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &AvailabilityResponse{
		ConfigurationID: config.ID,
		VenueName:       config.VenueName,
		Arrangement:     string(config.Arrangement),
		Capacity:        config.Capacity,
		Date:            date.Format(domain.DateFormat),
		Available:       len(reasons) == 0,
		Reasons:         FromBlockReasons(reasons),
	}

	h.logger.Info("GET /configurations/{id}/availability - configuration_id=%d, date=%s, available=%t",
		configurationID, dateValue, response.Available)
	handlers.RespondJSON(w, http.StatusOK, response)
}
