package transition_reservation

import (
	"time"

	transitionReservation "github.com/clubelmeta/CEM-SalonService/internal/usecase/transition_reservation"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status string `json:"status"` // целевой статус
}

// TransitionResponse HTTP response model
type TransitionResponse struct {
	ID             int64  `json:"id"`
	PreviousStatus string `json:"previousStatus"`
	Status         string `json:"status"`
	UpdatedAt      string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionReservation.Response) *TransitionResponse {
	return &TransitionResponse{
		ID:             resp.ID,
		PreviousStatus: resp.PreviousStatus,
		Status:         resp.Status,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
