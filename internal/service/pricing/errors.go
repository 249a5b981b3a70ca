package pricing

import "errors"

var (
	// ErrRateNotConfigured возвращается, когда у конфигурации не задан базовый тариф
	ErrRateNotConfigured = errors.New("rate not configured for configuration")

	// ErrConfigurationNotFound возвращается, когда конфигурация салона не найдена
	ErrConfigurationNotFound = errors.New("venue configuration not found")

	// ErrAddOnNotFound возвращается, когда услуга не найдена или неактивна
	ErrAddOnNotFound = errors.New("add-on service not found")

	// ErrInvalidQuantity возвращается при некорректном количестве услуги
	ErrInvalidQuantity = errors.New("invalid add-on quantity")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
