package venues

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// VenueRepository интерфейс репозитория салонов и их конфигураций
type VenueRepository interface {
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error)
	ListConfigurationsByVenue(ctx context.Context, venueID int64) ([]*domain.VenueConfiguration, error)
	ListAvailableVenues(ctx context.Context) ([]*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
