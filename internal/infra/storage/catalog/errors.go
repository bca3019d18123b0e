package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда пользователя нет в каталоге
	ErrUserNotFound = fmt.Errorf("catalog.repository: user not found: %w", domain.ErrNotFound)

	// ErrInvalidRow возвращается, когда строка каталога не соответствует схеме
	ErrInvalidRow = fmt.Errorf("catalog.repository: invalid row: %w", domain.ErrDataIntegrity)

	// ErrInvalidEmbeddedValue возвращается, когда вложенное значение не декодируется
	ErrInvalidEmbeddedValue = fmt.Errorf("catalog.repository: invalid embedded value: %w", domain.ErrDataIntegrity)

	// ErrDuplicateID возвращается при повторяющемся идентификаторе
	ErrDuplicateID = fmt.Errorf("catalog.repository: duplicate id: %w", domain.ErrDataIntegrity)
)
