package get_blackouts

import (
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// BlackoutResponse HTTP модель блокировки салона
type BlackoutResponse struct {
	ID          int64  `json:"id"`
	VenueID     int64  `json:"venueId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

// BlackoutListResponse ответ со списком блокировок
type BlackoutListResponse struct {
	Blackouts []BlackoutResponse `json:"blackouts"`
}

// FromDomainBlackout конвертирует domain модель в DTO
func FromDomainBlackout(b *domain.BlackoutPeriod) BlackoutResponse {
	resp := BlackoutResponse{
		ID:          b.ID,
		VenueID:     b.VenueID,
		StartDate:   b.StartDate.Format(domain.DateFormat),
		EndDate:     b.EndDate.Format(domain.DateFormat),
		Reason:      string(b.Reason),
		Description: b.Description,
	}

	if !b.StartTime.IsZero() {
		resp.StartTime = b.StartTime.String()
	}
	if !b.EndTime.IsZero() {
		resp.EndTime = b.EndTime.String()
	}

	return resp
}

// FromDomainBlackoutList конвертирует список блокировок в DTO
func FromDomainBlackoutList(blackouts []*domain.BlackoutPeriod) *BlackoutListResponse {
	result := make([]BlackoutResponse, 0, len(blackouts))
	for _, b := range blackouts {
		result = append(result, FromDomainBlackout(b))
	}
	return &BlackoutListResponse{Blackouts: result}
}
