package submit_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	catalogRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/catalog"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
	"github.com/clubelmeta/CEM-SalonService/internal/service/pricing"
	"github.com/clubelmeta/CEM-SalonService/pkg/money"
	"github.com/clubelmeta/CEM-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

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

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  *domain.Reservation
	nextID   int64
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.nextID == 0 {
		f.nextID = 1
	}
	res.ID = f.nextID
	res.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	res.UpdatedAt = res.CreatedAt
	f.created = res
	return res, nil
}

func (f *fakeReservationRepo) ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeCatalogRepo struct {
	codes map[string]*domain.MembershipCode
}

func (f *fakeCatalogRepo) GetActiveMembershipCode(ctx context.Context, code string) (*domain.MembershipCode, error) {
	c, ok := f.codes[code]
	if !ok {
		return nil, catalogRepo.ErrMembershipCodeNotFound
	}
	return c, nil
}

type fakeAvailability struct {
	reasons []domain.BlockReason
	err     error
}

func (f *fakeAvailability) Check(ctx context.Context, config *domain.VenueConfiguration, date time.Time, partySize int) ([]domain.BlockReason, error) {
	return f.reasons, f.err
}

type fakePricing struct {
	quote       *pricing.Quote
	lines       []domain.ReservationAddOn
	resolveErr  error
	buildErr    error
	resolveHits int
}

func (f *fakePricing) ResolveTotal(ctx context.Context, config *domain.VenueConfiguration, clientType domain.ClientType, duration domain.Duration, requests []pricing.AddOnRequest) (*pricing.Quote, error) {
	f.resolveHits++
	return f.quote, f.resolveErr
}

func (f *fakePricing) BuildLineItems(ctx context.Context, requests []pricing.AddOnRequest) ([]domain.ReservationAddOn, error) {
	return f.lines, f.buildErr
}

type fakeNotifier struct {
	mu        sync.Mutex
	calls     int
	lastRes   *domain.Reservation
	err       error
	delivered chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{delivered: make(chan struct{}, 10)}
}

func (n *fakeNotifier) ReservationSubmitted(ctx context.Context, reservation *domain.Reservation, config *domain.VenueConfiguration) error {
	n.mu.Lock()
	n.calls++
	n.lastRes = reservation
	err := n.err
	n.mu.Unlock()
	n.delivered <- struct{}{}
	return err
}

func (n *fakeNotifier) waitForDelivery(t *testing.T) {
	t.Helper()
	select {
	case <-n.delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("submission notification was not dispatched")
	}
}

type fakeTxManager struct{ serializableCalls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializableCalls++
	return fn(ctx)
}

type fixture struct {
	venueRepo       *fakeVenueRepo
	reservationRepo *fakeReservationRepo
	catalogRepo     *fakeCatalogRepo
	availability    *fakeAvailability
	pricing         *fakePricing
	notifier        *fakeNotifier
	txManager       *fakeTxManager
	uc              *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		venueRepo: &fakeVenueRepo{configs: map[int64]*domain.VenueConfiguration{
			10: {ID: 10, VenueID: 1, VenueName: "Salon Imperial", Arrangement: domain.ArrangementBanquet, Capacity: 120, MemberRate4H: 150000, NonMemberRate4H: 220000},
		}},
		reservationRepo: &fakeReservationRepo{},
		catalogRepo:     &fakeCatalogRepo{codes: map[string]*domain.MembershipCode{"CEM-001": {ID: 1, Code: "CEM-001", HolderName: "Maria Soto", Active: true}}},
		availability:    &fakeAvailability{},
		pricing: &fakePricing{quote: &pricing.Quote{
			BaseCents:   220000,
			AddonsCents: 0,
			TotalCents:  220000,
		}},
		notifier:  newFakeNotifier(),
		txManager: &fakeTxManager{},
	}
	f.uc = NewUseCase(f.venueRepo, f.reservationRepo, f.catalogRepo, f.availability, f.pricing, f.notifier, f.txManager, nopLogger{})
	f.uc.timeProvider = fixedTimeProvider{now: testNow}
	return f
}

func TestExecuteCreatesPendingReservation(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "Salon Imperial", resp.VenueName)
	assert.Equal(t, "2200.00", resp.Total)
	assert.Equal(t, "2200.00", resp.Base)
	assert.Equal(t, 1, f.txManager.serializableCalls)

	require.NotNil(t, f.reservationRepo.created)
	assert.Equal(t, domain.StatusPending, f.reservationRepo.created.Status)
	assert.Equal(t, money.Cents(220000), f.reservationRepo.created.TotalCents)
}

func TestExecuteRejectsInvalidFields(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ClientName = "A"
	req.PartySize = 0

	_, err := f.uc.Execute(context.Background(), req)

	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Len(t, rej.Fields, 2)
	assert.Empty(t, rej.Reasons)
	// Nothing persisted on validation failure
	assert.Nil(t, f.reservationRepo.created)
	assert.Zero(t, f.txManager.serializableCalls)
}

func TestExecuteRejectsUnavailableDate(t *testing.T) {
	f := newFixture()
	f.availability.reasons = []domain.BlockReason{
		{Code: domain.BlockCapacityExceeded, Message: "too many guests"},
		{Code: domain.BlockVenueBlocked, Message: "maintenance"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Len(t, rej.Reasons, 2)
	assert.Empty(t, rej.Fields)
	assert.Nil(t, f.reservationRepo.created)
}

func TestExecuteInvalidMembershipCodeRejectsOutright(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ClientType = "MEMBER"
	req.MembershipCode = ptr.Ptr("WRONG-CODE")

	_, err := f.uc.Execute(context.Background(), req)

	// No silent downgrade to NON_MEMBER: the request is rejected
	assert.ErrorIs(t, err, ErrInvalidMembershipCode)
	assert.Nil(t, f.reservationRepo.created)
}

func TestExecuteValidMembershipCode(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ClientType = "MEMBER"
	req.MembershipCode = ptr.Ptr("CEM-001")

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ClientMember, f.reservationRepo.created.ClientType)
}

func TestExecuteConfigurationNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ConfigurationID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrConfigurationNotFound)
}

func TestExecuteManualTotalPreserved(t *testing.T) {
	f := newFixture()
	f.pricing.lines = []domain.ReservationAddOn{
		{AddOnID: 1, AddOnName: "Catering", Quantity: 10, UnitPriceCents: 2500, SubtotalCents: 25000},
	}
	req := validRequest()
	req.Total = ptr.Ptr("1800.00")
	req.AddOns = []AddOnItem{{AddOnID: 1, Quantity: 10}}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Staff-entered total stored as-is, never recomputed
	assert.Equal(t, "1800.00", resp.Total)
	assert.Equal(t, money.Cents(180000), f.reservationRepo.created.TotalCents)
	assert.Zero(t, f.pricing.resolveHits)

	// Line items still snapshot catalog prices, and the add-ons
	// subtotal is reported from the stored lines
	assert.Equal(t, "250.00", resp.Addons)
	assert.Empty(t, resp.Base)
	require.Len(t, resp.LineItems, 1)
	assert.Equal(t, "25.00", resp.LineItems[0].UnitPrice)
}

func TestExecuteZeroManualTotalTriggersPricing(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Total = ptr.Ptr("0.00")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, f.pricing.resolveHits)
	assert.Equal(t, "2200.00", resp.Total)
}

func TestExecuteSameDateReservationsDoNotBlock(t *testing.T) {
	f := newFixture()
	f.reservationRepo.existing = []*domain.Reservation{
		{ID: 5, ConfigurationID: 10, Status: domain.StatusConfirmed},
	}

	// Overlap is allowed: staff decides how to handle shared dates
	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestExecuteMapsPricingErrors(t *testing.T) {
	f := newFixture()
	f.pricing.resolveErr = pricing.ErrRateNotConfigured
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRateNotConfigured)

	f = newFixture()
	f.pricing.resolveErr = pricing.ErrAddOnNotFound
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAddOnNotFound)
}

func TestExecuteDispatchesSubmissionNotification(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	f.notifier.waitForDelivery(t)
	assert.Equal(t, 1, f.notifier.calls)
	assert.Equal(t, int64(1), f.notifier.lastRes.ID)
}

func TestExecuteNotifierFailureDoesNotFailSubmission(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("broker unavailable")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	f.notifier.waitForDelivery(t)
}

func TestExecuteRejectedRequestsDoNotNotify(t *testing.T) {
	f := newFixture()
	f.availability.reasons = []domain.BlockReason{{Code: domain.BlockVenueBlocked}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	select {
	case <-f.notifier.delivered:
		t.Fatal("unexpected notification for rejected submission")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExecuteAvailabilityErrorIsInternal(t *testing.T) {
	f := newFixture()
	f.availability.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
