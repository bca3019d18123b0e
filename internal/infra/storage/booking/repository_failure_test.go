package booking

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/renameio/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

var errDiskFull = errors.New("no space left on device")

func TestRepository_CreateRollsBackFailedWrite(t *testing.T) {
	existing := ledgerHeader + "B-1,U1,R1,4-seat-1,2024-06-01,19:00,4\n"

	tests := []struct {
		name    string
		writeAt func(f *os.File, b []byte, off int64) (int, error)
	}{
		{
			name: "short write",
			writeAt: func(f *os.File, b []byte, off int64) (int, error) {
				return f.WriteAt(b[:len(b)/2], off)
			},
		},
		{
			name: "error after partial write",
			writeAt: func(f *os.File, b []byte, off int64) (int, error) {
				n, _ := f.WriteAt(b[:len(b)-3], off)
				return n, errDiskFull
			},
		},
		{
			name: "error before any byte",
			writeAt: func(f *os.File, b []byte, off int64) (int, error) {
				return 0, errDiskFull
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newLedger(t, ptr(existing))
			repo.writeAt = tt.writeAt

			_, err := repo.Create(context.Background(), newBooking("B-2", "U2", "2-seat-1"))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrWrite)
			assert.ErrorIs(t, err, domain.ErrIO)

			assert.Equal(t, existing, readFile(t, repo.Path()))

			bookings, err := repo.List(context.Background())
			require.NoError(t, err)
			require.Len(t, bookings, 1)
			assert.Equal(t, "B-1", bookings[0].ID)
		})
	}
}

func TestRepository_CreateRollbackOnAbsentLedger(t *testing.T) {
	repo := newLedger(t, nil)
	repo.writeAt = func(f *os.File, b []byte, off int64) (int, error) {
		n, _ := f.WriteAt(b[:len(b)/2], off)
		return n, errDiskFull
	}

	_, err := repo.Create(context.Background(), newBooking("B-1", "U1", "4-seat-1"))
	assert.ErrorIs(t, err, ErrWrite)

	// файл остается пустым, а пустой журнал читается как отсутствующий
	assert.Equal(t, "", readFile(t, repo.Path()))
	bookings, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)

	repo.writeAt = writeFileAt
	_, err = repo.Create(context.Background(), newBooking("B-1", "U1", "4-seat-1"))
	require.NoError(t, err)
	assert.Equal(t, ledgerHeader+"B-1,U1,R1,4-seat-1,2024-06-01,19:00,4\n", readFile(t, repo.Path()))
}

func TestRepository_DeleteKeepsLedgerWhenReplaceFails(t *testing.T) {
	existing := ledgerHeader +
		"B-1,U1,R1,4-seat-1,2024-06-01,19:00,4\n" +
		"B-2,U2,R1,2-seat-1,2024-06-01,19:00,2\n"
	repo := newLedger(t, ptr(existing))

	var replaceCalls int
	repo.replace = func(pending *renameio.PendingFile) error {
		replaceCalls++
		return errDiskFull
	}

	_, err := repo.Delete(context.Background(), "B-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
	assert.Equal(t, 1, replaceCalls)

	assert.Equal(t, existing, readFile(t, repo.Path()))

	// временный файл удален
	entries, err := os.ReadDir(filepath.Dir(repo.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(repo.Path()), entries[0].Name())

	repo.replace = replacePending
	deleted, err := repo.Delete(context.Background(), "B-1")
	require.NoError(t, err)
	assert.Equal(t, "B-1", deleted.ID)
	assert.Equal(t, ledgerHeader+"B-2,U2,R1,2-seat-1,2024-06-01,19:00,2\n", readFile(t, repo.Path()))
}
