package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

const restaurantsHeader = "restaurant_id,name,cuisine_type,rating,location,total_tables,table_configuration,opening_hours,closing_hours\n"
const usersHeader = "user_id,name,email,phone_number,current_bookings\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestRepository(t *testing.T, restaurants, users string) (*Repository, *recordingLogger) {
	t.Helper()
	dir := t.TempDir()
	log := &recordingLogger{}
	repo := NewRepository(
		writeFile(t, dir, "restaurants.csv", restaurants),
		writeFile(t, dir, "users.csv", users),
		log,
	)
	return repo, log
}

func TestRepository_GetRestaurants(t *testing.T) {
	restaurants := restaurantsHeader +
		`R1,Sakura House,Japanese,4.5,Downtown,5,"{""2-seat"": 2, ""4-seat"": 1}",11:00,22:00` + "\n" +
		`R2,Trattoria,Italian,3.9,Uptown,3,"{'4-seat': 2, '6-seat': 1}",9:30,23:00` + "\n"
	repo, log := newTestRepository(t, restaurants, usersHeader)

	got, err := repo.GetRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, &domain.Restaurant{
		ID:          "R1",
		Name:        "Sakura House",
		CuisineType: "Japanese",
		Rating:      4.5,
		Location:    "Downtown",
		TotalTables: 5,
		TableConfiguration: []domain.TableClass{
			{Key: "2-seat", Count: 2},
			{Key: "4-seat", Count: 1},
		},
		OpeningHours: types.TimeString("11:00"),
		ClosingHours: types.TimeString("22:00"),
	}, got[0])

	// часы приводятся к HH:MM
	assert.Equal(t, types.TimeString("09:30"), got[1].OpeningHours)
	assert.Empty(t, log.warnings)
}

func TestRepository_GetRestaurants_TableCountWarning(t *testing.T) {
	restaurants := restaurantsHeader +
		`R1,Tiny,Cafe,4.0,Center,1,"{""2-seat"": 3}",08:00,18:00` + "\n"
	repo, log := newTestRepository(t, restaurants, usersHeader)

	got, err := repo.GetRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "R1")
}

func TestRepository_GetRestaurants_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		wantErr error
	}{
		{name: "rating out of range", row: `R1,A,Cafe,5.5,X,1,"{""2-seat"": 1}",08:00,18:00`, wantErr: ErrInvalidRow},
		{name: "rating not a number", row: `R1,A,Cafe,good,X,1,"{""2-seat"": 1}",08:00,18:00`, wantErr: ErrInvalidRow},
		{name: "negative total tables", row: `R1,A,Cafe,4,X,-1,"{""2-seat"": 1}",08:00,18:00`, wantErr: ErrInvalidRow},
		{name: "bad opening hours", row: `R1,A,Cafe,4,X,1,"{""2-seat"": 1}",noon,18:00`, wantErr: ErrInvalidRow},
		{name: "bad table configuration", row: `R1,A,Cafe,4,X,1,not-a-dict,08:00,18:00`, wantErr: ErrInvalidEmbeddedValue},
		{name: "empty id", row: `,A,Cafe,4,X,1,"{""2-seat"": 1}",08:00,18:00`, wantErr: ErrInvalidRow},
		{
			name: "duplicate id",
			row: `R1,A,Cafe,4,X,1,"{""2-seat"": 1}",08:00,18:00` + "\n" +
				`R1,B,Cafe,4,X,1,"{""2-seat"": 1}",08:00,18:00`,
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestRepository(t, restaurantsHeader+tt.row+"\n", usersHeader)

			_, err := repo.GetRestaurants(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrDataIntegrity)
			assert.Contains(t, err.Error(), "restaurants.csv line")
		})
	}
}

func TestRepository_GetRestaurants_FileProblems(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "users.csv"), &recordingLogger{})
	_, err := repo.GetRestaurants(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo, _ = newTestRepository(t, "id,name\nR1,A\n", usersHeader)
	_, err = repo.GetRestaurants(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestRepository_GetUserByID(t *testing.T) {
	users := usersHeader +
		`U1,Alice,alice@example.com,555-0101,[]` + "\n" +
		`U2,Bob,bob@example.com,555-0102,"[{""booking_id"": ""B-1"", ""restaurant_id"": ""R1"", ""date"": ""2024-06-01"", ""time"": ""19:00"", ""table_id"": ""4-seat-1"", ""party_size"": 4}]"` + "\n" +
		`U3,Carol,carol@example.com,555-0103,` + "\n"
	repo, _ := newTestRepository(t, restaurantsHeader, users)

	alice, err := repo.GetUserByID(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.Name)
	assert.Empty(t, alice.CurrentBookings)

	bob, err := repo.GetUserByID(context.Background(), "U2")
	require.NoError(t, err)
	require.Len(t, bob.CurrentBookings, 1)
	assert.Equal(t, "B-1", bob.CurrentBookings[0].BookingID)
	assert.Equal(t, 4, bob.CurrentBookings[0].PartySize)

	carol, err := repo.GetUserByID(context.Background(), "U3")
	require.NoError(t, err)
	assert.Empty(t, carol.CurrentBookings)

	_, err = repo.GetUserByID(context.Background(), "U404")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_GetUsers_Invalid(t *testing.T) {
	users := usersHeader + `U1,Alice,a@example.com,1,"{""not"": ""a list""}"` + "\n"
	repo, _ := newTestRepository(t, restaurantsHeader, users)

	_, err := repo.GetUsers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEmbeddedValue)
	assert.True(t, strings.Contains(err.Error(), "users.csv line 2"))
}

func TestRepository_CanceledContext(t *testing.T) {
	repo, _ := newTestRepository(t, restaurantsHeader, usersHeader)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetRestaurants(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.GetUsers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
