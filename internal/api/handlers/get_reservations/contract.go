package get_reservations

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
	CountsByStatus(ctx context.Context, req *models.ListReservationsRequest) (*models.StatusCountsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
