package bookings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-TableBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-TableBooking/pkg/txmanager"
)

const ledgerContent = "booking_id,user_id,restaurant_id,table_id,date,time,party_size\n" +
	"B-1,U1,R1,4-seat-1,2024-06-01,19:00,4\n" +
	"B-2,U2,R1,2-seat-1,2024-06-01,19:00,2\n" +
	"B-3,U1,R2,2-seat-1,2024-06-02,12:00,2\n"

type stubCatalog struct{}

func (stubCatalog) Get(id string) (*domain.Restaurant, error) {
	if id == "R1" || id == "R2" {
		return &domain.Restaurant{ID: id}, nil
	}
	return nil, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
}

type stubSessions struct {
	forgotten []string
}

func (s *stubSessions) ForgetBooking(userID, bookingID string) bool {
	s.forgotten = append(s.forgotten, userID+"/"+bookingID)
	return true
}

type stubNotifier struct {
	events []notifier.Event
	err    error
}

func (n *stubNotifier) Publish(_ context.Context, event notifier.Event) error {
	n.events = append(n.events, event)
	return n.err
}

type stubMetrics struct{ ops []string }

func (m *stubMetrics) RecordLedgerOperation(operation, result string) {
	m.ops = append(m.ops, operation+":"+result)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc      *Service
	path     string
	sessions *stubSessions
	notifier *stubNotifier
	metrics  *stubMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bookings.csv")
	require.NoError(t, os.WriteFile(path, []byte(ledgerContent), 0o644))

	f := &fixture{
		path:     path,
		sessions: &stubSessions{},
		notifier: &stubNotifier{},
		metrics:  &stubMetrics{},
	}
	f.svc = NewService(
		bookingRepo.NewRepository(path),
		stubCatalog{},
		f.sessions,
		f.notifier,
		txmanager.NewTransactionManager(path+".lock", time.Second),
		f.metrics,
		nopLogger{},
	)
	f.svc.timeProvider = fixedTime{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	return f
}

func (f *fixture) ledger(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	return string(data)
}

func TestService_CancelTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Cancel(ctx, "B-1", &models.CancelBookingRequest{UserID: "U1"})
	require.NoError(t, err)
	assert.Equal(t, "B-1", resp.BookingID)
	assert.Equal(t, "4-seat-1", resp.TableID)

	afterFirst := f.ledger(t)
	assert.NotContains(t, afterFirst, "B-1,")

	_, err = f.svc.Cancel(ctx, "B-1", &models.CancelBookingRequest{UserID: "U1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, afterFirst, f.ledger(t))

	assert.Equal(t, []string{"U1/B-1"}, f.sessions.forgotten)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, notifier.EventBookingCancelled, f.notifier.events[0].Type)
	assert.Equal(t, "B-1", f.notifier.events[0].Booking.BookingID)
	assert.Equal(t, []string{"cancel:success", "cancel:not_found"}, f.metrics.ops)
}

func TestService_CancelUnknownKeepsLedger(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Cancel(context.Background(), "B-404", &models.CancelBookingRequest{UserID: "U1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, ledgerContent, f.ledger(t))
	assert.Empty(t, f.sessions.forgotten)
	assert.Empty(t, f.notifier.events)

	_, err = f.svc.Cancel(context.Background(), " ", &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CancelSurvivesNotifierFailure(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("broker down")

	_, err := f.svc.Cancel(context.Background(), "B-2", &models.CancelBookingRequest{UserID: "U2"})
	require.NoError(t, err)
	assert.NotContains(t, f.ledger(t), "B-2,")
}

func TestService_CancelMalformedLedger(t *testing.T) {
	f := newFixture(t)
	broken := ledgerContent + "B-9,U1,R1,4-seat-1,not-a-date,19:00,4\n"
	require.NoError(t, os.WriteFile(f.path, []byte(broken), 0o644))

	_, err := f.svc.Cancel(context.Background(), "B-1", &models.CancelBookingRequest{UserID: "U1"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, broken, f.ledger(t))
	assert.Equal(t, []string{"cancel:error"}, f.metrics.ops)
}

func TestService_GetByID(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.GetByID(context.Background(), "B-3")
	require.NoError(t, err)
	assert.Equal(t, &models.BookingResponse{
		BookingID:    "B-3",
		UserID:       "U1",
		RestaurantID: "R2",
		TableID:      "2-seat-1",
		Date:         "2024-06-02",
		Time:         "12:00",
		PartySize:    2,
	}, resp)

	_, err = f.svc.GetByID(context.Background(), "B-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	for _, id := range []string{"", "   "} {
		_, err = f.svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestService_GetUserBookings(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.GetUserBookings(context.Background(), "U1")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "B-1", resp.Bookings[0].BookingID)
	assert.Equal(t, "B-3", resp.Bookings[1].BookingID)

	resp, err = f.svc.GetUserBookings(context.Background(), "U404")
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestService_GetRestaurantBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{RestaurantID: "R1"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	date := "2024-06-02"
	resp, err = f.svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{RestaurantID: "R1", Date: &date})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)

	bad := "June 2"
	_, err = f.svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{RestaurantID: "R1", Date: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{RestaurantID: "R9"})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
