package validate_membership

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/service/reservations/models"
)

type ReservationService interface {
	ValidateMembership(ctx context.Context, code string) (*models.MembershipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
