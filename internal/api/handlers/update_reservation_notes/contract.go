package update_reservation_notes

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/service/reservations/models"
)

type ReservationService interface {
	UpdateNotes(ctx context.Context, id int64, notes string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
