package check_availability

import (
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// BlockReasonResponse причина недоступности даты
type BlockReasonResponse struct {
	Code           string  `json:"code"`
	Message        string  `json:"message"`
	BlackoutReason *string `json:"blackoutReason,omitempty"`
	BlockedFrom    *string `json:"blockedFrom,omitempty"`
	BlockedUntil   *string `json:"blockedUntil,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ConfigurationID int64                 `json:"configurationId"`
	VenueName       string                `json:"venueName"`
	Arrangement     string                `json:"arrangement"`
	Capacity        int                   `json:"capacity"`
	Date            string                `json:"date"`
	Available       bool                  `json:"available"`
	Reasons         []BlockReasonResponse `json:"reasons,omitempty"`
}

// FromBlockReasons конвертирует причины недоступности в DTO
func FromBlockReasons(reasons []domain.BlockReason) []BlockReasonResponse {
	result := make([]BlockReasonResponse, 0, len(reasons))
	for _, reason := range reasons {
		item := BlockReasonResponse{
			Code:    string(reason.Code),
			Message: reason.Message,
		}
		if reason.BlackoutReason != nil {
			s := string(*reason.BlackoutReason)
			item.BlackoutReason = &s
		}
		if reason.BlockedFrom != nil {
			s := reason.BlockedFrom.Format(domain.DateFormat)
			item.BlockedFrom = &s
		}
		if reason.BlockedUntil != nil {
			s := reason.BlockedUntil.Format(domain.DateFormat)
			item.BlockedUntil = &s
		}
		result = append(result, item)
	}
	return result
}
