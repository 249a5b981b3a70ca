package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	submitReservation "github.com/clubelmeta/CEM-SalonService/internal/usecase/submit_reservation"
	"github.com/clubelmeta/CEM-SalonService/pkg/metrics"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты мероприятия, ожидается YYYY-MM-DD"
	msgRejected              = "заявка отклонена"
	msgDateUnavailable       = "выбранная дата недоступна"
	msgConfigurationNotFound = "конфигурация салона не найдена"
	msgInvalidMembership     = "код членства не подтверждён"
	msgAddOnNotFound         = "запрошенная услуга недоступна"
)

type Handler struct {
	useCase SubmitReservationUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.countOutcome("rejected")

		// Отклонение с накопленными причинами: ошибки полей дают 400,
		// причины недоступности даты дают 409
		var rejection *submitReservation.RejectionError
		if errors.As(err, &rejection) {
			if len(rejection.Reasons) > 0 {
				h.logger.Warn("POST /reservations - Date unavailable: configuration_id=%d, reasons=%d",
					req.ConfigurationID, len(rejection.Reasons))
				handlers.RespondJSON(w, http.StatusConflict, FromRejection(http.StatusConflict, msgDateUnavailable, rejection))
				return
			}
			h.logger.Warn("POST /reservations - Validation failed: configuration_id=%d, fields=%d",
				req.ConfigurationID, len(rejection.Fields))
			handlers.RespondJSON(w, http.StatusBadRequest, FromRejection(http.StatusBadRequest, msgRejected, rejection))
			return
		}

		switch {
		case errors.Is(err, submitReservation.ErrConfigurationNotFound):
			h.logger.Warn("POST /reservations - Configuration not found: configuration_id=%d", req.ConfigurationID)
			handlers.RespondNotFound(w, msgConfigurationNotFound)

		case errors.Is(err, submitReservation.ErrInvalidMembershipCode):
			h.logger.Warn("POST /reservations - Membership code not valid: configuration_id=%d", req.ConfigurationID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidMembership)

		case errors.Is(err, submitReservation.ErrAddOnNotFound):
			h.logger.Warn("POST /reservations - Add-on not available: configuration_id=%d", req.ConfigurationID)
			handlers.RespondBadRequest(w, msgAddOnNotFound)

		default:
			// ErrRateNotConfigured это ошибка данных каталога, не клиента
			h.logger.Error("POST /reservations - Failed to submit reservation: configuration_id=%d, error=%v",
				req.ConfigurationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.countOutcome("accepted")

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation submitted successfully: reservation_id=%d, configuration_id=%d, total=%s",
		result.ID, req.ConfigurationID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func (h *Handler) countOutcome(outcome string) {
	if h.metrics != nil {
		h.metrics.ReservationsSubmitted.WithLabelValues(outcome).Inc()
	}
}
