package transition_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	reservationRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/reservation"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	updates      []domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	f.updates = append(f.updates, status)
	return nil
}

type fakeVenueRepo struct {
	configs map[int64]*domain.VenueConfiguration
}

func (f *fakeVenueRepo) GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error) {
	c, ok := f.configs[id]
	if !ok {
		return nil, venueRepo.ErrConfigurationNotFound
	}
	return c, nil
}

// recordingNotifier records confirmations and signals delivery so tests
// can wait for the background dispatch.
type recordingNotifier struct {
	mu        sync.Mutex
	calls     int
	lastRes   *domain.Reservation
	lastCfg   *domain.VenueConfiguration
	err       error
	delivered chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{delivered: make(chan struct{}, 10)}
}

func (n *recordingNotifier) ReservationConfirmed(ctx context.Context, reservation *domain.Reservation, config *domain.VenueConfiguration) error {
	n.mu.Lock()
	n.calls++
	n.lastRes = reservation
	n.lastCfg = config
	err := n.err
	n.mu.Unlock()
	n.delivered <- struct{}{}
	return err
}

func (n *recordingNotifier) waitForDelivery(t *testing.T) {
	t.Helper()
	select {
	case <-n.delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
	}
}

func (n *recordingNotifier) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	reservationRepo *fakeReservationRepo
	notifier        *recordingNotifier
	uc              *UseCase
}

func newFixture(status domain.ReservationStatus) *fixture {
	f := &fixture{
		reservationRepo: &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
			1: {ID: 1, ConfigurationID: 10, ClientName: "Maria Soto", ClientEmail: "maria@example.com", Status: status},
		}},
		notifier: newRecordingNotifier(),
	}
	venues := &fakeVenueRepo{configs: map[int64]*domain.VenueConfiguration{
		10: {ID: 10, VenueID: 1, VenueName: "Salon Imperial", Arrangement: domain.ArrangementBanquet},
	}}
	f.uc = NewUseCase(f.reservationRepo, venues, f.notifier, fakeTxManager{}, nopLogger{})
	return f
}

func admin() domain.Actor {
	return domain.Actor{ID: 1, Role: domain.RoleAdmin}
}

func assistant() domain.Actor {
	return domain.Actor{ID: 2, Role: domain.RoleAssistant}
}

func TestExecuteConfirm(t *testing.T) {
	f := newFixture(domain.StatusPending)

	resp, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: "CONFIRMED", Actor: admin()})
	require.NoError(t, err)

	assert.Equal(t, "PENDING", resp.PreviousStatus)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, f.reservationRepo.reservations[1].Status)
}

func TestExecuteConfirmDispatchesExactlyOneNotification(t *testing.T) {
	f := newFixture(domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: "CONFIRMED", Actor: admin()})
	require.NoError(t, err)

	f.notifier.waitForDelivery(t)
	assert.Equal(t, 1, f.notifier.callCount())
	assert.Equal(t, int64(1), f.notifier.lastRes.ID)
	require.NotNil(t, f.notifier.lastCfg)
	assert.Equal(t, "Salon Imperial", f.notifier.lastCfg.VenueName)
}

func TestExecuteNonConfirmTransitionsDoNotNotify(t *testing.T) {
	for _, target := range []string{"CANCELLED", "COMPLETED"} {
		f := newFixture(domain.StatusPending)

		_, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: target, Actor: admin()})
		require.NoError(t, err)

		select {
		case <-f.notifier.delivered:
			t.Fatalf("unexpected notification for transition to %s", target)
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestExecuteNotifierFailureDoesNotFailTransition(t *testing.T) {
	f := newFixture(domain.StatusPending)
	f.notifier.err = assert.AnError

	resp, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: "CONFIRMED", Actor: admin()})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)

	// Delivery was attempted; the transition is already committed
	f.notifier.waitForDelivery(t)
	assert.Equal(t, domain.StatusConfirmed, f.reservationRepo.reservations[1].Status)
}

func TestExecuteIllegalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.ReservationStatus
		target string
	}{
		{name: "cancelled is terminal", from: domain.StatusCancelled, target: "CONFIRMED"},
		{name: "completed is terminal", from: domain.StatusCompleted, target: "CANCELLED"},
		{name: "confirmed cannot return to pending", from: domain.StatusConfirmed, target: "PENDING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.from)

			_, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: tt.target, Actor: admin()})
			assert.ErrorIs(t, err, ErrIllegalTransition)
			// Status unchanged
			assert.Equal(t, tt.from, f.reservationRepo.reservations[1].Status)
		})
	}
}

func TestExecuteUnknownStatus(t *testing.T) {
	f := newFixture(domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: "ARCHIVED", Actor: admin()})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecuteRoleGuard(t *testing.T) {
	// Assistant may confirm and cancel
	f := newFixture(domain.StatusPending)
	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: "CONFIRMED", Actor: assistant()})
	require.NoError(t, err)

	// But not complete
	f = newFixture(domain.StatusConfirmed)
	_, err = f.uc.Execute(context.Background(), &Request{ReservationID: 1, TargetStatus: "COMPLETED", Actor: assistant()})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, domain.StatusConfirmed, f.reservationRepo.reservations[1].Status)
}

func TestExecuteReservationNotFound(t *testing.T) {
	f := newFixture(domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), &Request{ReservationID: 999, TargetStatus: "CONFIRMED", Actor: admin()})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
