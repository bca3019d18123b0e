package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

type stubUsers struct {
	users map[string]*domain.User
	err   error
	calls int
}

func (s *stubUsers) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("catalog: %s: %w", userID, domain.ErrNotFound)
	}
	return u.Clone(), nil
}

type stubLedger struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubLedger) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	res := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			res = append(res, b)
		}
	}
	return res, nil
}

type passTx struct{}

func (passTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type gaugeMetrics struct{ active int }

func (g *gaugeMetrics) SetActiveSessions(n int) { g.active = n }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(ledger *stubLedger) (*Service, *stubUsers, *gaugeMetrics) {
	users := &stubUsers{users: map[string]*domain.User{
		"U1": {ID: "U1", Name: "Alice", CurrentBookings: []domain.BookingSummary{
			{BookingID: "B-1", RestaurantID: "R1", Date: "2024-06-01", Time: "19:00", TableID: "4-seat-1", PartySize: 4},
		}},
		"U2": {ID: "U2", Name: "Bob"},
	}}
	m := &gaugeMetrics{}
	return NewService(users, ledger, passTx{}, m, nopLogger{}), users, m
}

func TestService_LoginLogout(t *testing.T) {
	svc, users, m := newTestService(&stubLedger{})
	ctx := context.Background()

	resp, err := svc.Login(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
	require.Len(t, resp.CurrentBookings, 1)
	assert.Equal(t, "B-1", resp.CurrentBookings[0].BookingID)
	assert.True(t, svc.IsLoggedIn("U1"))
	assert.Equal(t, 1, m.active)

	_, err = svc.Login(ctx, "U2")
	require.NoError(t, err)
	assert.Equal(t, 2, m.active)

	// повторный вход перечитывает каталог
	_, err = svc.Login(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, 3, users.calls)
	assert.Equal(t, 2, m.active)

	require.NoError(t, svc.Logout("U1"))
	assert.False(t, svc.IsLoggedIn("U1"))
	assert.Equal(t, 1, m.active)

	assert.ErrorIs(t, svc.Logout("U1"), ErrNotLoggedIn)
	_, err = svc.Current("U1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestService_LoginErrors(t *testing.T) {
	svc, users, _ := newTestService(&stubLedger{})

	_, err := svc.Login(context.Background(), "U404")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Login(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	users.err = fmt.Errorf("bad row: %w", domain.ErrDataIntegrity)
	_, err = svc.Login(context.Background(), "U1")
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, svc.IsLoggedIn("U1"))
}

func TestService_CacheUpdates(t *testing.T) {
	svc, _, _ := newTestService(&stubLedger{})
	_, err := svc.Login(context.Background(), "U1")
	require.NoError(t, err)

	require.NoError(t, svc.RecordBooking("U1", domain.BookingSummary{BookingID: "B-2", RestaurantID: "R1", TableID: "2-seat-1"}))
	user, err := svc.Current("U1")
	require.NoError(t, err)
	assert.Len(t, user.CurrentBookings, 2)

	// Current отдает копию
	user.CurrentBookings = nil
	again, err := svc.Current("U1")
	require.NoError(t, err)
	assert.Len(t, again.CurrentBookings, 2)

	assert.True(t, svc.ForgetBooking("U1", "B-1"))
	assert.False(t, svc.ForgetBooking("U1", "B-1"))
	assert.False(t, svc.ForgetBooking("U2", "B-2"))

	user, err = svc.Current("U1")
	require.NoError(t, err)
	require.Len(t, user.CurrentBookings, 1)
	assert.Equal(t, "B-2", user.CurrentBookings[0].BookingID)

	assert.ErrorIs(t, svc.RecordBooking("U2", domain.BookingSummary{}), ErrNotLoggedIn)
}

func TestService_Reconcile(t *testing.T) {
	ledger := &stubLedger{bookings: []*domain.Booking{
		{ID: "B-1", UserID: "U1"},
		{ID: "B-7", UserID: "U1"},
		{ID: "B-8", UserID: "U2"},
	}}
	svc, _, _ := newTestService(ledger)
	ctx := context.Background()
	_, err := svc.Login(ctx, "U1")
	require.NoError(t, err)

	report, err := svc.Reconcile(ctx, "U1")
	require.NoError(t, err)
	assert.False(t, report.Consistent)
	assert.Equal(t, []string{"B-7"}, report.MissingFromCache)
	assert.Empty(t, report.StaleInCache)

	require.NoError(t, svc.RecordBooking("U1", domain.BookingSummary{BookingID: "B-7"}))
	require.NoError(t, svc.RecordBooking("U1", domain.BookingSummary{BookingID: "B-9"}))
	require.NoError(t, svc.RecordBooking("U1", domain.BookingSummary{RestaurantID: "R1", TableID: "2-seat-1"}))

	report, err = svc.Reconcile(ctx, "U1")
	require.NoError(t, err)
	assert.Empty(t, report.MissingFromCache)
	assert.Equal(t, []string{"B-9"}, report.StaleInCache)
	assert.Equal(t, 1, report.LegacyEntries)

	_, err = svc.Reconcile(ctx, "U2")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	ledger.err = errors.New("io")
	_, err = svc.Reconcile(ctx, "U1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ReconcileConsistent(t *testing.T) {
	svc, _, _ := newTestService(&stubLedger{bookings: []*domain.Booking{{ID: "B-1", UserID: "U1"}}})
	_, err := svc.Login(context.Background(), "U1")
	require.NoError(t, err)

	report, err := svc.Reconcile(context.Background(), "U1")
	require.NoError(t, err)
	assert.True(t, report.Consistent)
}
