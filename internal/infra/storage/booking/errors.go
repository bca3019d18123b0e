package booking

import (
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking.repository: booking not found: %w", domain.ErrNotFound)

	// ErrInvalidRow возвращается, когда строка журнала не соответствует схеме
	ErrInvalidRow = fmt.Errorf("booking.repository: invalid row: %w", domain.ErrDataIntegrity)

	// ErrDuplicateID возвращается, когда booking_id встречается в журнале дважды
	ErrDuplicateID = fmt.Errorf("booking.repository: duplicate booking id: %w", domain.ErrDataIntegrity)

	// ErrInvalidBooking возвращается при попытке записать неполное бронирование
	ErrInvalidBooking = fmt.Errorf("booking.repository: invalid booking: %w", domain.ErrValidation)

	// ErrRead возвращается при ошибке чтения журнала
	ErrRead = fmt.Errorf("booking.repository: read failed: %w", domain.ErrIO)

	// ErrWrite возвращается при ошибке записи журнала
	ErrWrite = fmt.Errorf("booking.repository: write failed: %w", domain.ErrIO)
)
