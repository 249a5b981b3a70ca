package quote_price

import (
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/internal/service/pricing"
)

// AddOnItemRequest позиция услуги в запросе расчёта
type AddOnItemRequest struct {
	AddOnID  int64 `json:"addOnId"`
	Quantity int   `json:"quantity"`
}

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ConfigurationID int64              `json:"configurationId"`
	ClientType      string             `json:"clientType"` // MEMBER | NON_MEMBER
	Duration        string             `json:"duration"`   // 4H | 8H
	AddOns          []AddOnItemRequest `json:"addOns,omitempty"`
}

// LineItemResponse позиция услуги в ответе расчёта
type LineItemResponse struct {
	AddOnID   int64  `json:"addOnId"`
	AddOnName string `json:"addOnName"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ConfigurationID int64              `json:"configurationId"`
	VenueName       string             `json:"venueName"`
	Arrangement     string             `json:"arrangement"`
	ClientType      string             `json:"clientType"`
	Duration        string             `json:"duration"`
	Base            string             `json:"base"`
	Addons          string             `json:"addons"`
	Total           string             `json:"total"`
	LineItems       []LineItemResponse `json:"lineItems,omitempty"`
}

// ToAddOnRequests конвертирует позиции запроса в модель сервиса
func (r *QuoteRequest) ToAddOnRequests() []pricing.AddOnRequest {
	requests := make([]pricing.AddOnRequest, 0, len(r.AddOns))
	for _, item := range r.AddOns {
		requests = append(requests, pricing.AddOnRequest{
			AddOnID:  item.AddOnID,
			Quantity: item.Quantity,
		})
	}
	return requests
}

// FromQuote конвертирует расчёт в HTTP response
func FromQuote(req *QuoteRequest, quote *pricing.Quote, config *domain.VenueConfiguration) *QuoteResponse {
	resp := &QuoteResponse{
		ConfigurationID: config.ID,
		VenueName:       config.VenueName,
		Arrangement:     string(config.Arrangement),
		ClientType:      req.ClientType,
		Duration:        req.Duration,
		Base:            quote.BaseCents.String(),
		Addons:          quote.AddonsCents.String(),
		Total:           quote.TotalCents.String(),
	}

	for _, line := range quote.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			AddOnID:   line.AddOnID,
			AddOnName: line.AddOnName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPriceCents.String(),
			Subtotal:  line.SubtotalCents.String(),
		})
	}

	return resp
}
