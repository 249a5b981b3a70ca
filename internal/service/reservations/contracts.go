package reservations

import (
	"context"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateNotes(ctx context.Context, id int64, notes string) error
	CountsByStatus(ctx context.Context, filter domain.ReservationFilter) (*domain.StatusCounts, error)
}

// CatalogRepository интерфейс репозитория каталога для проверки кодов членства
type CatalogRepository interface {
	GetActiveMembershipCode(ctx context.Context, code string) (*domain.MembershipCode, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
