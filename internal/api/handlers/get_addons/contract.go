package get_addons

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

type PricingService interface {
	ListActiveAddOns(ctx context.Context) ([]*domain.AddOnService, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
