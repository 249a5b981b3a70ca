package submit_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

var (
	// ErrConfigurationNotFound возвращается, когда конфигурация салона не найдена
	ErrConfigurationNotFound = errors.New("submit_reservation: venue configuration not found")

	// ErrInvalidMembershipCode возвращается, когда заявленный код членства не подтверждён.
	// Заявка отклоняется целиком: молчаливого понижения до NON_MEMBER нет.
	ErrInvalidMembershipCode = errors.New("submit_reservation: membership code is not valid")

	// ErrRateNotConfigured возвращается, когда у конфигурации не задан тариф
	ErrRateNotConfigured = errors.New("submit_reservation: rate not configured")

	// ErrAddOnNotFound возвращается, когда запрошенная услуга недоступна
	ErrAddOnNotFound = errors.New("submit_reservation: add-on service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)

// FieldError ошибка валидации конкретного поля заявки
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RejectionError агрегирует все причины отклонения заявки:
// ошибки полей и причины недоступности. Возвращается одним
// значением, чтобы клиент исправил заявку за один проход.
type RejectionError struct {
	Fields  []FieldError
	Reasons []domain.BlockReason
}

// Error реализует интерфейс error
func (e *RejectionError) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.Reasons))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	for _, r := range e.Reasons {
		parts = append(parts, string(r.Code))
	}
	return "submit_reservation: rejected: " + strings.Join(parts, "; ")
}
