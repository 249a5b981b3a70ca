package availability

import "errors"

var (
	// ErrVenueNotFound возвращается, когда салон не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrConfigurationNotFound возвращается, когда конфигурация салона не найдена
	ErrConfigurationNotFound = errors.New("venue configuration not found")

	// ErrBlackoutNotFound возвращается, когда блокировка не найдена
	ErrBlackoutNotFound = errors.New("blackout period not found")

	// ErrInvalidBlackout возвращается при некорректных данных блокировки
	ErrInvalidBlackout = errors.New("invalid blackout period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
