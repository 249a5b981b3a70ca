package get_addons

import (
	"net/http"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
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

// AddOnResponse HTTP модель услуги каталога
type AddOnResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitPrice   string `json:"unitPrice"`
	UnitLabel   string `json:"unitLabel,omitempty"`
}

// AddOnListResponse ответ со списком услуг
type AddOnListResponse struct {
	AddOns []AddOnResponse `json:"addOns"`
}

// Handle GET /api/v1/addons
// Возвращает активные услуги каталога с текущими ценами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addons, err := h.service.ListActiveAddOns(r.Context())
	if err != nil {
		h.logger.Error("GET /addons - Failed to list add-ons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := AddOnListResponse{AddOns: make([]AddOnResponse, 0, len(addons))}
	for _, addon := range addons {
		result.AddOns = append(result.AddOns, fromDomainAddOn(addon))
	}

	h.logger.Info("GET /addons - Retrieved %d add-ons", len(result.AddOns))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func fromDomainAddOn(addon *domain.AddOnService) AddOnResponse {
	return AddOnResponse{
		ID:          addon.ID,
		Name:        addon.Name,
		Description: addon.Description,
		UnitPrice:   addon.UnitPriceCents.String(),
		UnitLabel:   addon.UnitLabel,
	}
}
