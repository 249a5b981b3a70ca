package transition_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("transition_reservation: reservation not found")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("transition_reservation: invalid target status")

	// ErrIllegalTransition возвращается, когда переход запрещён таблицей переходов
	ErrIllegalTransition = errors.New("transition_reservation: illegal status transition")

	// ErrForbidden возвращается, когда роль сотрудника не допускает переход
	ErrForbidden = errors.New("transition_reservation: actor role does not permit this transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_reservation: internal error")
)
