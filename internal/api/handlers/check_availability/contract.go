package check_availability

import (
	"context"
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

type AvailabilityService interface {
	CheckConfiguration(ctx context.Context, configurationID int64, date time.Time, partySize int) ([]domain.BlockReason, *domain.VenueConfiguration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
