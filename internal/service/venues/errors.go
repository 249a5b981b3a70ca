package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда салон не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrConfigurationNotFound возвращается, когда конфигурация не найдена
	ErrConfigurationNotFound = errors.New("venue configuration not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
