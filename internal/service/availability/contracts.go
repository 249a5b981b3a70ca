package availability

import (
	"context"
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// BlackoutRepository интерфейс реестра блокировок салонов
type BlackoutRepository interface {
	ListActiveByVenue(ctx context.Context, venueID int64) ([]*domain.BlackoutPeriod, error)
	ListUpcomingByVenue(ctx context.Context, venueID int64, today time.Time) ([]*domain.BlackoutPeriod, error)
	Create(ctx context.Context, b *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error)
	Deactivate(ctx context.Context, id int64) error
}

// VenueRepository интерфейс репозитория салонов
type VenueRepository interface {
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
