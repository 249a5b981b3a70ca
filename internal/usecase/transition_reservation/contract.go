package transition_reservation

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// VenueRepository интерфейс репозитория салонов
type VenueRepository interface {
	GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error)
}

// Notifier интерфейс отправки уведомлений о подтверждении.
// Отправка не должна блокировать или проваливать переход статуса.
type Notifier interface {
	ReservationConfirmed(ctx context.Context, reservation *domain.Reservation, config *domain.VenueConfiguration) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
