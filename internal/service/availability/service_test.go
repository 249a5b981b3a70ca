package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBlackoutRepo struct {
	blackouts []*domain.BlackoutPeriod
	created   *domain.BlackoutPeriod
}

func (f *fakeBlackoutRepo) ListActiveByVenue(ctx context.Context, venueID int64) ([]*domain.BlackoutPeriod, error) {
	out := make([]*domain.BlackoutPeriod, 0)
	for _, b := range f.blackouts {
		if b.VenueID == venueID && b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlackoutRepo) ListUpcomingByVenue(ctx context.Context, venueID int64, today time.Time) ([]*domain.BlackoutPeriod, error) {
	return f.ListActiveByVenue(ctx, venueID)
}

func (f *fakeBlackoutRepo) Create(ctx context.Context, b *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	b.ID = 100
	f.created = b
	return b, nil
}

func (f *fakeBlackoutRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

type fakeVenueRepo struct {
	venues  map[int64]*domain.Venue
	configs map[int64]*domain.VenueConfiguration
}

func (f *fakeVenueRepo) GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
}

func (f *fakeVenueRepo) GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error) {
	c, ok := f.configs[id]
	if !ok {
		return nil, venueRepo.ErrConfigurationNotFound
	}
	return c, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{
		venues: map[int64]*domain.Venue{1: {ID: 1, Name: "Salon Imperial", Available: true}},
		configs: map[int64]*domain.VenueConfiguration{
			10: {ID: 10, VenueID: 1, Arrangement: domain.ArrangementBanquet, Capacity: 100},
		},
	}
}

func TestCheckAvailable(t *testing.T) {
	svc := NewService(&fakeBlackoutRepo{}, testVenueRepo(), nopLogger{})
	config := &domain.VenueConfiguration{ID: 10, VenueID: 1, Capacity: 100}

	reasons, err := svc.Check(context.Background(), config, day(2026, 9, 15), 50)
	require.NoError(t, err)
	assert.Empty(t, reasons)
}

func TestCheckCapacityExceeded(t *testing.T) {
	svc := NewService(&fakeBlackoutRepo{}, testVenueRepo(), nopLogger{})
	config := &domain.VenueConfiguration{ID: 10, VenueID: 1, Arrangement: domain.ArrangementBanquet, Capacity: 100}

	reasons, err := svc.Check(context.Background(), config, day(2026, 9, 15), 150)
	require.NoError(t, err)
	require.Len(t, reasons, 1)
	assert.Equal(t, domain.BlockCapacityExceeded, reasons[0].Code)
}

func TestCheckVenueBlocked(t *testing.T) {
	blackouts := &fakeBlackoutRepo{blackouts: []*domain.BlackoutPeriod{
		{
			ID: 1, VenueID: 1, Active: true,
			StartDate: day(2026, 9, 14), EndDate: day(2026, 9, 16),
			Reason: domain.ReasonMaintenance, Description: "floor refinishing",
		},
	}}
	svc := NewService(blackouts, testVenueRepo(), nopLogger{})
	config := &domain.VenueConfiguration{ID: 10, VenueID: 1, Capacity: 100}

	reasons, err := svc.Check(context.Background(), config, day(2026, 9, 15), 50)
	require.NoError(t, err)
	require.Len(t, reasons, 1)
	assert.Equal(t, domain.BlockVenueBlocked, reasons[0].Code)
	require.NotNil(t, reasons[0].BlackoutReason)
	assert.Equal(t, domain.ReasonMaintenance, *reasons[0].BlackoutReason)
	require.NotNil(t, reasons[0].BlockedFrom)
	assert.Equal(t, day(2026, 9, 14), *reasons[0].BlockedFrom)
}

func TestCheckAccumulatesAllReasons(t *testing.T) {
	blackouts := &fakeBlackoutRepo{blackouts: []*domain.BlackoutPeriod{
		{ID: 1, VenueID: 1, Active: true, StartDate: day(2026, 9, 15), EndDate: day(2026, 9, 15), Reason: domain.ReasonRepair},
		{ID: 2, VenueID: 1, Active: true, StartDate: day(2026, 9, 10), EndDate: day(2026, 9, 20), Reason: domain.ReasonPrivateEvent},
	}}
	svc := NewService(blackouts, testVenueRepo(), nopLogger{})
	config := &domain.VenueConfiguration{ID: 10, VenueID: 1, Capacity: 100}

	// Over capacity AND two overlapping blackouts: all three reported
	reasons, err := svc.Check(context.Background(), config, day(2026, 9, 15), 200)
	require.NoError(t, err)
	assert.Len(t, reasons, 3)
}

func TestCheckIgnoresInactiveAndNonMatchingBlackouts(t *testing.T) {
	blackouts := &fakeBlackoutRepo{blackouts: []*domain.BlackoutPeriod{
		{ID: 1, VenueID: 1, Active: false, StartDate: day(2026, 9, 15), EndDate: day(2026, 9, 15)},
		{ID: 2, VenueID: 1, Active: true, StartDate: day(2026, 10, 1), EndDate: day(2026, 10, 2)},
		{ID: 3, VenueID: 2, Active: true, StartDate: day(2026, 9, 15), EndDate: day(2026, 9, 15)},
	}}
	svc := NewService(blackouts, testVenueRepo(), nopLogger{})
	config := &domain.VenueConfiguration{ID: 10, VenueID: 1, Capacity: 100}

	reasons, err := svc.Check(context.Background(), config, day(2026, 9, 15), 50)
	require.NoError(t, err)
	assert.Empty(t, reasons)
}

func TestCheckConfiguration(t *testing.T) {
	svc := NewService(&fakeBlackoutRepo{}, testVenueRepo(), nopLogger{})

	reasons, config, err := svc.CheckConfiguration(context.Background(), 10, day(2026, 9, 15), 50)
	require.NoError(t, err)
	assert.Equal(t, int64(10), config.ID)
	assert.Empty(t, reasons)

	_, _, err = svc.CheckConfiguration(context.Background(), 999, day(2026, 9, 15), 50)
	assert.ErrorIs(t, err, ErrConfigurationNotFound)
}

func TestIsBlocked(t *testing.T) {
	blackouts := &fakeBlackoutRepo{blackouts: []*domain.BlackoutPeriod{
		{ID: 7, VenueID: 1, Active: true, StartDate: day(2026, 9, 14), EndDate: day(2026, 9, 16)},
	}}
	svc := NewService(blackouts, testVenueRepo(), nopLogger{})

	b, err := svc.IsBlocked(context.Background(), 1, day(2026, 9, 15))
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, int64(7), b.ID)

	b, err = svc.IsBlocked(context.Background(), 1, day(2026, 9, 20))
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestCreateBlackoutValidation(t *testing.T) {
	svc := NewService(&fakeBlackoutRepo{}, testVenueRepo(), nopLogger{})

	_, err := svc.CreateBlackout(context.Background(), &domain.BlackoutPeriod{
		VenueID: 1, Reason: domain.BlackoutReason("HOLIDAY"),
		StartDate: day(2026, 9, 15), EndDate: day(2026, 9, 16),
	})
	assert.ErrorIs(t, err, ErrInvalidBlackout)

	_, err = svc.CreateBlackout(context.Background(), &domain.BlackoutPeriod{
		VenueID: 1, Reason: domain.ReasonMaintenance,
		StartDate: day(2026, 9, 16), EndDate: day(2026, 9, 15),
	})
	assert.ErrorIs(t, err, ErrInvalidBlackout)

	_, err = svc.CreateBlackout(context.Background(), &domain.BlackoutPeriod{
		VenueID: 999, Reason: domain.ReasonMaintenance,
		StartDate: day(2026, 9, 15), EndDate: day(2026, 9, 16),
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreateBlackoutSetsActive(t *testing.T) {
	repo := &fakeBlackoutRepo{}
	svc := NewService(repo, testVenueRepo(), nopLogger{})

	created, err := svc.CreateBlackout(context.Background(), &domain.BlackoutPeriod{
		VenueID: 1, Reason: domain.ReasonPrivateEvent,
		StartDate: day(2026, 9, 15), EndDate: day(2026, 9, 16),
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, int64(100), created.ID)
}

func TestListBlackoutsUnknownVenue(t *testing.T) {
	svc := NewService(&fakeBlackoutRepo{}, testVenueRepo(), nopLogger{})

	_, err := svc.ListBlackouts(context.Background(), 999, day(2026, 9, 1))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
