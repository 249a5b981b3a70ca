package quote_price

import (
	"errors"
	"net/http"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/internal/service/pricing"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidClientType     = "некорректный тип клиента, ожидается MEMBER или NON_MEMBER"
	msgInvalidDuration       = "некорректная длительность, ожидается 4H или 8H"
	msgConfigurationNotFound = "конфигурация салона не найдена"
	msgAddOnNotFound         = "запрошенная услуга недоступна"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
// Предварительный расчёт стоимости без создания резервации.
// Тот же путь расчёта, что и при подаче заявки: суммы совпадут
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientType := domain.ClientType(req.ClientType)
	if clientType != domain.ClientMember && clientType != domain.ClientNonMember {
		h.logger.Warn("POST /quotes - Invalid client type: %s", req.ClientType)
		handlers.RespondBadRequest(w, msgInvalidClientType)
		return
	}

	duration := domain.Duration(req.Duration)
	if !domain.IsValidDuration(duration) {
		h.logger.Warn("POST /quotes - Invalid duration: %s", req.Duration)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	quote, config, err := h.service.QuoteByConfiguration(r.Context(), req.ConfigurationID, clientType, duration, req.ToAddOnRequests())
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrConfigurationNotFound):
			h.logger.Warn("POST /quotes - Configuration not found: configuration_id=%d", req.ConfigurationID)
			handlers.RespondNotFound(w, msgConfigurationNotFound)

		case errors.Is(err, pricing.ErrAddOnNotFound), errors.Is(err, pricing.ErrInvalidQuantity):
			h.logger.Warn("POST /quotes - Add-on not available: configuration_id=%d, error=%v", req.ConfigurationID, err)
			handlers.RespondBadRequest(w, msgAddOnNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to build quote: configuration_id=%d, error=%v", req.ConfigurationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote built: configuration_id=%d, total=%s", req.ConfigurationID, quote.TotalCents.String())
	handlers.RespondJSON(w, http.StatusOK, FromQuote(&req, quote, config))
}
