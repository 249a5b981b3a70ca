package notifier

import "errors"

var (
	// ErrRenderFailed возвращается при ошибке рендеринга шаблона письма
	ErrRenderFailed = errors.New("notifier: failed to render message")

	// ErrPublishFailed возвращается, когда событие не удалось опубликовать в очередь
	ErrPublishFailed = errors.New("notifier: failed to publish event")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier: internal error")
)
