package catalog

import "errors"

var (
	// ErrAddOnNotFound услуга не найдена или неактивна
	ErrAddOnNotFound = errors.New("add-on service not found")

	// ErrMembershipCodeNotFound код членства не найден или неактивен
	ErrMembershipCodeNotFound = errors.New("membership code not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")

	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("failed to scan row")
)
