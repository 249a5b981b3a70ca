package quote_price

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/internal/service/pricing"
)

type PricingService interface {
	QuoteByConfiguration(ctx context.Context, configurationID int64, clientType domain.ClientType, duration domain.Duration, requests []pricing.AddOnRequest) (*pricing.Quote, *domain.VenueConfiguration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
