package pricing

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetActiveAddOnByID(ctx context.Context, id int64) (*domain.AddOnService, error)
	ListActiveAddOns(ctx context.Context) ([]*domain.AddOnService, error)
}

// VenueRepository интерфейс репозитория салонов
type VenueRepository interface {
	GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
