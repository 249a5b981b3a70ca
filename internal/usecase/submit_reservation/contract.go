package submit_reservation

import (
	"context"
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/internal/service/pricing"
)

// VenueRepository интерфейс репозитория салонов
type VenueRepository interface {
	GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// CatalogRepository интерфейс репозитория каталога для проверки кодов членства
type CatalogRepository interface {
	GetActiveMembershipCode(ctx context.Context, code string) (*domain.MembershipCode, error)
}

// AvailabilityService интерфейс сервиса доступности салонов
type AvailabilityService interface {
	Check(ctx context.Context, config *domain.VenueConfiguration, date time.Time, partySize int) ([]domain.BlockReason, error)
}

// PricingService интерфейс сервиса расчёта стоимости
type PricingService interface {
	ResolveTotal(ctx context.Context, config *domain.VenueConfiguration, clientType domain.ClientType, duration domain.Duration, requests []pricing.AddOnRequest) (*pricing.Quote, error)
	BuildLineItems(ctx context.Context, requests []pricing.AddOnRequest) ([]domain.ReservationAddOn, error)
}

// Notifier интерфейс отправки уведомлений о приёме заявки.
// Отправка не должна блокировать или проваливать подачу.
type Notifier interface {
	ReservationSubmitted(ctx context.Context, reservation *domain.Reservation, config *domain.VenueConfiguration) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
