package get_blackouts

import (
	"context"
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

type AvailabilityService interface {
	ListBlackouts(ctx context.Context, venueID int64, today time.Time) ([]*domain.BlackoutPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
