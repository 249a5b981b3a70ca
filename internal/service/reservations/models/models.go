package models

import (
	"errors"
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение резерваций с фильтрацией
type ListReservationsRequest struct {
	VenueID         *int64     `json:"venueId,omitempty"`         // Фильтр по салону (опционально)
	ConfigurationID *int64     `json:"configurationId,omitempty"` // Фильтр по конфигурации (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые резервации
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		VenueID:         r.VenueID,
		ConfigurationID: r.ConfigurationID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !domain.IsValidStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateNotesRequest запрос на обновление заметок резервации
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// Response модели

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID              int64 `json:"id"`
	ConfigurationID int64 `json:"configurationId"`

	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	ClientType  string  `json:"clientType"`
	EntityName  *string `json:"entityName,omitempty"`

	EventDate       string `json:"eventDate"`           // "2026-10-15"
	StartTime       string `json:"startTime,omitempty"` // "18:30"
	Duration        string `json:"duration"`
	DecorationHours int    `json:"decorationHours"`
	PartySize       int    `json:"partySize"`

	// Сумма в формате с фиксированной точкой, например "18500.00"
	Total  string `json:"total"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`

	AddOns []AddOnLineResponse `json:"addOns,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddOnLineResponse позиция дополнительной услуги резервации
type AddOnLineResponse struct {
	ID        int64  `json:"id"`
	AddOnID   int64  `json:"addOnId"`
	AddOnName string `json:"addOnName"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
	Notes     string `json:"notes,omitempty"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// StatusCountsResponse агрегаты по статусам для панели персонала
type StatusCountsResponse struct {
	Pending   int    `json:"pending"`
	Confirmed int    `json:"confirmed"`
	Cancelled int    `json:"cancelled"`
	Completed int    `json:"completed"`
	Revenue   string `json:"revenue"` // сумма по подтверждённым и завершённым
}

// MembershipResponse результат проверки кода членства
type MembershipResponse struct {
	Valid      bool   `json:"valid"`
	HolderName string `json:"holderName,omitempty"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:              r.ID,
		ConfigurationID: r.ConfigurationID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		ClientType:      string(r.ClientType),
		EntityName:      r.EntityName,
		EventDate:       r.EventDate.Format(domain.DateFormat),
		Duration:        string(r.Duration),
		DecorationHours: r.DecorationHours,
		PartySize:       r.PartySize,
		Total:           r.TotalCents.String(),
		Status:          string(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if !r.StartTime.IsZero() {
		resp.StartTime = r.StartTime.String()
	}

	for _, line := range r.AddOns {
		resp.AddOns = append(resp.AddOns, AddOnLineResponse{
			ID:        line.ID,
			AddOnID:   line.AddOnID,
			AddOnName: line.AddOnName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPriceCents.String(),
			Subtotal:  line.SubtotalCents.String(),
			Notes:     line.Notes,
		})
	}

	return resp
}

// FromDomainReservationList конвертирует список резерваций в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: result}
}

// FromDomainStatusCounts конвертирует агрегаты в DTO
func FromDomainStatusCounts(c *domain.StatusCounts) *StatusCountsResponse {
	if c == nil {
		return nil
	}
	return &StatusCountsResponse{
		Pending:   c.Pending,
		Confirmed: c.Confirmed,
		Cancelled: c.Cancelled,
		Completed: c.Completed,
		Revenue:   c.RevenueCents.String(),
	}
}
