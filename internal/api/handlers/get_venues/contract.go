package get_venues

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/service/venues/models"
)

type VenueService interface {
	ListVenues(ctx context.Context) (*models.VenueListResponse, error)
	GetVenue(ctx context.Context, id int64) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
