package csvfile

import (
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var (
	// ErrFileNotFound возвращается, когда файла нет на диске
	ErrFileNotFound = fmt.Errorf("csvfile: file not found: %w", domain.ErrNotFound)

	// ErrEmptyFile возвращается для файла без единой строки (нет даже заголовка)
	ErrEmptyFile = fmt.Errorf("csvfile: file is empty: %w", domain.ErrDataIntegrity)

	// ErrMalformed возвращается при несовпадении заголовка или количества полей
	ErrMalformed = fmt.Errorf("csvfile: malformed file: %w", domain.ErrDataIntegrity)

	// ErrRead возвращается при ошибке чтения
	ErrRead = fmt.Errorf("csvfile: read failed: %w", domain.ErrIO)

	// ErrWrite возвращается при ошибке записи
	ErrWrite = fmt.Errorf("csvfile: write failed: %w", domain.ErrIO)
)
