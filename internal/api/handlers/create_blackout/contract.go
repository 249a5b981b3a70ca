package create_blackout

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

type AvailabilityService interface {
	CreateBlackout(ctx context.Context, b *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
