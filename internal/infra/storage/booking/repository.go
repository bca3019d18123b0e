package booking

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/renameio/v2"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/infra/storage/csvfile"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

const filePerm = 0o644

// Repository журнал бронирований поверх одного CSV файла.
// Repository не синхронизирует доступ сам: мутации выполняются внутри txmanager.
type Repository struct {
	path string

	// Подменяются в тестах для проверки отката при ошибке записи
	writeAt func(f *os.File, b []byte, off int64) (int, error)
	replace func(pending *renameio.PendingFile) error
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(path string) *Repository {
	return &Repository{
		path:    path,
		writeAt: writeFileAt,
		replace: replacePending,
	}
}

func writeFileAt(f *os.File, b []byte, off int64) (int, error) {
	return f.WriteAt(b, off)
}

func replacePending(pending *renameio.PendingFile) error {
	return pending.CloseAtomicallyReplace()
}

// Path возвращает путь к файлу журнала
func (r *Repository) Path() string {
	return r.path
}

// List возвращает все бронирования в порядке записи.
// Отсутствующий или пустой файл означает, что бронирований еще нет.
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bookings, _, err := r.load()
	if err != nil {
		return nil, fmt.Errorf("List - load ledger: %w", err)
	}
	return bookings, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrBookingNotFound, id)
}

// GetByUserID получает все бронирования пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.filter(ctx, func(b *domain.Booking) bool {
		return b.UserID == userID
	})
}

// GetBySlot получает бронирования ресторана на точный слот (дата + время)
func (r *Repository) GetBySlot(ctx context.Context, restaurantID, date string, t types.TimeString) ([]*domain.Booking, error) {
	return r.filter(ctx, func(b *domain.Booking) bool {
		return b.InSlot(restaurantID, date, t)
	})
}

// GetByRestaurant получает бронирования ресторана, опционально за одну дату
func (r *Repository) GetByRestaurant(ctx context.Context, restaurantID string, date *string) ([]*domain.Booking, error) {
	return r.filter(ctx, func(b *domain.Booking) bool {
		if b.RestaurantID != restaurantID {
			return false
		}
		return date == nil || b.Date == *date
	})
}

// Create дописывает бронирование в конец журнала.
// Строка пишется одним вызовом; при ошибке файл обрезается до прежнего размера,
// так что в журнале не остается частично записанных строк.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if booking == nil || booking.ID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidBooking)
	}

	row, err := csvfile.EncodeRow(toRecord(booking))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode row: %v", ErrWrite, err)
	}

	f, err := os.OpenFile(r.path, os.O_RDWR|os.O_CREATE, filePerm)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - open %s: %v", ErrWrite, r.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - stat %s: %v", ErrWrite, r.path, err)
	}
	size := info.Size()

	var buf bytes.Buffer
	if size == 0 {
		header, err := csvfile.EncodeRow(domain.BookingsHeader)
		if err != nil {
			return nil, fmt.Errorf("%w: Create - encode header: %v", ErrWrite, err)
		}
		buf.Write(header)
	} else {
		if err := csvfile.ReadHeader(io.NewSectionReader(f, 0, size), r.path, domain.BookingsHeader); err != nil {
			return nil, fmt.Errorf("Create - check header: %w", err)
		}

		last := make([]byte, 1)
		if _, err := f.ReadAt(last, size-1); err != nil {
			return nil, fmt.Errorf("%w: Create - read %s: %v", ErrRead, r.path, err)
		}
		if last[0] != '\n' {
			buf.WriteByte('\n')
		}
	}
	buf.Write(row)

	n, err := r.writeAt(f, buf.Bytes(), size)
	if err == nil && n < buf.Len() {
		err = io.ErrShortWrite
	}
	if err == nil {
		err = f.Sync()
	}
	if err != nil {
		if truncErr := f.Truncate(size); truncErr != nil {
			return nil, fmt.Errorf("%w: Create - append to %s: %v (rollback failed: %v)", ErrWrite, r.path, err, truncErr)
		}
		return nil, fmt.Errorf("%w: Create - append to %s: %v", ErrWrite, r.path, err)
	}

	return booking, nil
}

// Delete удаляет бронирование и возвращает удаленную запись.
// Файл переписывается целиком через временный файл и rename.
// Если бронирование не найдено, файл не изменяется.
func (r *Repository) Delete(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bookings, table, err := r.load()
	if err != nil {
		return nil, fmt.Errorf("Delete - load ledger: %w", err)
	}

	var deleted *domain.Booking
	rows := make([][]string, 0, len(bookings))
	for i, b := range bookings {
		if b.ID == id {
			deleted = b
			continue
		}
		rows = append(rows, table.Rows[i].Fields)
	}
	if deleted == nil {
		return nil, fmt.Errorf("%w: %q", ErrBookingNotFound, id)
	}

	if err := r.rewrite(rows); err != nil {
		return nil, fmt.Errorf("Delete - rewrite ledger: %w", err)
	}

	return deleted, nil
}

func (r *Repository) rewrite(rows [][]string) error {
	pending, err := renameio.NewPendingFile(r.path,
		renameio.WithTempDir(filepath.Dir(r.path)),
		renameio.WithPermissions(filePerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWrite, err)
	}
	defer pending.Cleanup()

	if err := csvfile.WriteTable(pending, domain.BookingsHeader, rows); err != nil {
		return err
	}
	if err := r.replace(pending); err != nil {
		return fmt.Errorf("%w: replace %s: %v", ErrWrite, r.path, err)
	}
	return nil
}

func (r *Repository) filter(ctx context.Context, keep func(b *domain.Booking) bool) ([]*domain.Booking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if keep(b) {
			result = append(result, b)
		}
	}
	return result, nil
}

// load читает журнал. bookings[i] соответствует table.Rows[i].
func (r *Repository) load() ([]*domain.Booking, *csvfile.Table, error) {
	info, err := os.Stat(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []*domain.Booking{}, &csvfile.Table{Name: r.path, Header: domain.BookingsHeader}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: stat %s: %v", ErrRead, r.path, err)
	}
	if info.Size() == 0 {
		return []*domain.Booking{}, &csvfile.Table{Name: r.path, Header: domain.BookingsHeader}, nil
	}

	table, err := csvfile.ReadTable(r.path, domain.BookingsHeader)
	if err != nil {
		return nil, nil, err
	}

	bookings := make([]*domain.Booking, 0, len(table.Rows))
	seen := make(map[string]int, len(table.Rows))
	for _, row := range table.Rows {
		b, err := parseBooking(row)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: %w", r.path, row.Line, err)
		}
		if prev, dup := seen[b.ID]; dup {
			return nil, nil, fmt.Errorf("%w: %s line %d: %q already recorded at line %d",
				ErrDuplicateID, r.path, row.Line, b.ID, prev)
		}
		seen[b.ID] = row.Line
		bookings = append(bookings, b)
	}

	return bookings, table, nil
}

func parseBooking(row csvfile.Row) (*domain.Booking, error) {
	b := &domain.Booking{
		ID:           strings.TrimSpace(row.Get("booking_id")),
		UserID:       strings.TrimSpace(row.Get("user_id")),
		RestaurantID: strings.TrimSpace(row.Get("restaurant_id")),
		TableID:      strings.TrimSpace(row.Get("table_id")),
		Date:         strings.TrimSpace(row.Get("date")),
	}
	if b.ID == "" || b.UserID == "" || b.RestaurantID == "" || b.TableID == "" {
		return nil, fmt.Errorf("%w: booking_id, user_id, restaurant_id and table_id are required", ErrInvalidRow)
	}

	if _, err := time.Parse(domain.DateFormat, b.Date); err != nil {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidRow, b.Date)
	}

	t, err := types.NewTimeStringFromString(strings.TrimSpace(row.Get("time")))
	if err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidRow, err)
	}
	b.Time = t

	partySize, err := strconv.Atoi(strings.TrimSpace(row.Get("party_size")))
	if err != nil || partySize <= 0 {
		return nil, fmt.Errorf("%w: party_size %q must be a positive integer", ErrInvalidRow, row.Get("party_size"))
	}
	b.PartySize = partySize

	return b, nil
}

func toRecord(b *domain.Booking) []string {
	return []string{
		b.ID,
		b.UserID,
		b.RestaurantID,
		b.TableID,
		b.Date,
		b.Time.String(),
		strconv.Itoa(b.PartySize),
	}
}
