package create_blackout

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/pkg/types"
)

// CreateBlackoutRequest HTTP request model
type CreateBlackoutRequest struct {
	StartDate   string `json:"startDate"`           // "2026-11-01"
	EndDate     string `json:"endDate"`             // "2026-11-03"
	StartTime   string `json:"startTime,omitempty"` // "09:00"
	EndTime     string `json:"endTime,omitempty"`   // "18:00"
	Reason      string `json:"reason"`              // MAINTENANCE | PRIVATE_EVENT | REPAIR | OTHER
	Description string `json:"description,omitempty"`
}

// BlackoutResponse HTTP response model
type BlackoutResponse struct {
	ID          int64  `json:"id"`
	VenueID     int64  `json:"venueId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *CreateBlackoutRequest) ToDomain(venueID int64) (*domain.BlackoutPeriod, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	b := &domain.BlackoutPeriod{
		VenueID:     venueID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      domain.BlackoutReason(r.Reason),
		Description: r.Description,
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		b.StartTime = startTime
	}
	if r.EndTime != "" {
		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
		b.EndTime = endTime
	}

	return b, nil
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(b *domain.BlackoutPeriod) *BlackoutResponse {
	resp := &BlackoutResponse{
		ID:          b.ID,
		VenueID:     b.VenueID,
		StartDate:   b.StartDate.Format(domain.DateFormat),
		EndDate:     b.EndDate.Format(domain.DateFormat),
		Reason:      string(b.Reason),
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}

	if !b.StartTime.IsZero() {
		resp.StartTime = b.StartTime.String()
	}
	if !b.EndTime.IsZero() {
		resp.EndTime = b.EndTime.String()
	}

	return resp
}
