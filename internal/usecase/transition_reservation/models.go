package transition_reservation

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

// Request модель запроса на переход статуса резервации
type Request struct {
	ReservationID int64        // ID резервации
	TargetStatus  string       // Целевой статус
	Actor         domain.Actor // Сотрудник, выполняющий переход
}

// Response модель ответа с обновлённой резервацией
type Response struct {
	ID             int64     // ID резервации
	PreviousStatus string    // Статус до перехода
	Status         string    // Статус после перехода
	UpdatedAt      time.Time // Время обновления
}
