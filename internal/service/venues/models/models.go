package models

import (
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// Response модели

// VenueResponse ответ с данными салона
type VenueResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	LengthM   *float64 `json:"lengthM,omitempty"`
	WidthM    *float64 `json:"widthM,omitempty"`
	HeightM   *float64 `json:"heightM,omitempty"`
	DiameterM *float64 `json:"diameterM,omitempty"`

	Configurations []ConfigurationResponse `json:"configurations,omitempty"`
}

// ConfigurationResponse ответ с данными конфигурации салона
type ConfigurationResponse struct {
	ID          int64  `json:"id"`
	VenueID     int64  `json:"venueId"`
	VenueName   string `json:"venueName"`
	Arrangement string `json:"arrangement"`
	Capacity    int    `json:"capacity"`

	// Тарифы в формате с фиксированной точкой, например "1500.00"
	MemberRate4H    string  `json:"memberRate4h"`
	MemberRate8H    *string `json:"memberRate8h,omitempty"`
	NonMemberRate4H string  `json:"nonMemberRate4h"`
	NonMemberRate8H *string `json:"nonMemberRate8h,omitempty"`
}

// VenueListResponse ответ со списком салонов
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		LengthM:     v.LengthM,
		WidthM:      v.WidthM,
		HeightM:     v.HeightM,
		DiameterM:   v.DiameterM,
	}
}

// FromDomainConfiguration конвертирует конфигурацию салона в DTO
func FromDomainConfiguration(c *domain.VenueConfiguration) ConfigurationResponse {
	resp := ConfigurationResponse{
		ID:              c.ID,
		VenueID:         c.VenueID,
		VenueName:       c.VenueName,
		Arrangement:     string(c.Arrangement),
		Capacity:        c.Capacity,
		MemberRate4H:    c.MemberRate4H.String(),
		NonMemberRate4H: c.NonMemberRate4H.String(),
	}

	if c.MemberRate8H != nil {
		s := c.MemberRate8H.String()
		resp.MemberRate8H = &s
	}
	if c.NonMemberRate8H != nil {
		s := c.NonMemberRate8H.String()
		resp.NonMemberRate8H = &s
	}

	return resp
}

// FromDomainConfigurationList конвертирует список конфигураций в DTO
func FromDomainConfigurationList(configs []*domain.VenueConfiguration) []ConfigurationResponse {
	result := make([]ConfigurationResponse, 0, len(configs))
	for _, c := range configs {
		result = append(result, FromDomainConfiguration(c))
	}
	return result
}
