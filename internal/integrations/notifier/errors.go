package notifier

import "errors"

var (
	// ErrConnection возвращается, когда не удалось подключиться к брокеру
	ErrConnection = errors.New("notifier: broker connection failed")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("notifier: publish failed")

	// ErrUnknownEvent возвращается для события без типа
	ErrUnknownEvent = errors.New("notifier: unknown event type")
)
