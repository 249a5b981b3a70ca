package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	catalogRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/catalog"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCatalogRepo struct {
	addons map[int64]*domain.AddOnService
	err    error
}

func (f *fakeCatalogRepo) GetActiveAddOnByID(ctx context.Context, id int64) (*domain.AddOnService, error) {
	if f.err != nil {
		return nil, f.err
	}
	addon, ok := f.addons[id]
	if !ok {
		return nil, catalogRepo.ErrAddOnNotFound
	}
	return addon, nil
}

func (f *fakeCatalogRepo) ListActiveAddOns(ctx context.Context) ([]*domain.AddOnService, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.AddOnService, 0, len(f.addons))
	for _, a := range f.addons {
		out = append(out, a)
	}
	return out, nil
}

type fakeVenueRepo struct {
	configs map[int64]*domain.VenueConfiguration
}

func (f *fakeVenueRepo) GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error) {
	config, ok := f.configs[id]
	if !ok {
		return nil, venueRepo.ErrConfigurationNotFound
	}
	return config, nil
}

func testConfig() *domain.VenueConfiguration {
	member8h := money.Cents(250000)
	return &domain.VenueConfiguration{
		ID:              10,
		VenueID:         1,
		VenueName:       "Salon Imperial",
		Arrangement:     domain.ArrangementBanquet,
		Capacity:        120,
		MemberRate4H:    150000,
		MemberRate8H:    &member8h,
		NonMemberRate4H: 220000,
		// NonMemberRate8H left unset: falls back to the 4H rate
	}
}

func testCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{addons: map[int64]*domain.AddOnService{
		1: {ID: 1, Name: "Catering", UnitPriceCents: 2500, UnitLabel: "per person", Active: true},
		2: {ID: 2, Name: "Waiter", UnitPriceCents: 40000, UnitLabel: "per server", Active: true},
	}}
}

func TestResolveBasePrice(t *testing.T) {
	svc := NewService(testCatalog(), &fakeVenueRepo{}, nopLogger{})
	config := testConfig()

	tests := []struct {
		name       string
		clientType domain.ClientType
		duration   domain.Duration
		want       money.Cents
	}{
		{name: "member 4h", clientType: domain.ClientMember, duration: domain.Duration4H, want: 150000},
		{name: "member 8h", clientType: domain.ClientMember, duration: domain.Duration8H, want: 250000},
		{name: "non-member 4h", clientType: domain.ClientNonMember, duration: domain.Duration4H, want: 220000},
		{name: "non-member 8h falls back to 4h", clientType: domain.ClientNonMember, duration: domain.Duration8H, want: 220000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ResolveBasePrice(config, tt.clientType, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBasePriceNotConfigured(t *testing.T) {
	svc := NewService(testCatalog(), &fakeVenueRepo{}, nopLogger{})
	config := &domain.VenueConfiguration{ID: 11, MemberRate4H: 0, NonMemberRate4H: 220000}

	_, err := svc.ResolveBasePrice(config, domain.ClientMember, domain.Duration4H)
	assert.ErrorIs(t, err, ErrRateNotConfigured)
}

func TestBuildLineItemsSnapshotsCatalogPrice(t *testing.T) {
	catalog := testCatalog()
	svc := NewService(catalog, &fakeVenueRepo{}, nopLogger{})

	lines, err := svc.BuildLineItems(context.Background(), []AddOnRequest{
		{AddOnID: 1, Quantity: 40, Notes: "vegetarian menu"},
		{AddOnID: 2, Quantity: 3},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Catering", lines[0].AddOnName)
	assert.Equal(t, money.Cents(2500), lines[0].UnitPriceCents)
	assert.Equal(t, money.Cents(100000), lines[0].SubtotalCents)
	assert.Equal(t, "vegetarian menu", lines[0].Notes)
	assert.Equal(t, money.Cents(120000), lines[1].SubtotalCents)

	// Subsequent catalog changes do not affect snapshotted lines
	catalog.addons[1].UnitPriceCents = 9999
	assert.Equal(t, money.Cents(2500), lines[0].UnitPriceCents)
}

func TestBuildLineItemsInvalidQuantity(t *testing.T) {
	svc := NewService(testCatalog(), &fakeVenueRepo{}, nopLogger{})

	_, err := svc.BuildLineItems(context.Background(), []AddOnRequest{{AddOnID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.BuildLineItems(context.Background(), []AddOnRequest{{AddOnID: 1, Quantity: domain.MaxAddOnQuantity + 1}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestBuildLineItemsUnknownAddOn(t *testing.T) {
	svc := NewService(testCatalog(), &fakeVenueRepo{}, nopLogger{})

	_, err := svc.BuildLineItems(context.Background(), []AddOnRequest{{AddOnID: 777, Quantity: 1}})
	assert.ErrorIs(t, err, ErrAddOnNotFound)
}

func TestResolveTotal(t *testing.T) {
	svc := NewService(testCatalog(), &fakeVenueRepo{}, nopLogger{})
	config := testConfig()

	quote, err := svc.ResolveTotal(context.Background(), config, domain.ClientMember, domain.Duration4H, []AddOnRequest{
		{AddOnID: 1, Quantity: 40},
	})
	require.NoError(t, err)

	assert.Equal(t, money.Cents(150000), quote.BaseCents)
	assert.Equal(t, money.Cents(100000), quote.AddonsCents)
	assert.Equal(t, money.Cents(250000), quote.TotalCents)
	require.Len(t, quote.LineItems, 1)
}

func TestResolveTotalIsDeterministic(t *testing.T) {
	svc := NewService(testCatalog(), &fakeVenueRepo{}, nopLogger{})
	config := testConfig()
	requests := []AddOnRequest{{AddOnID: 1, Quantity: 10}, {AddOnID: 2, Quantity: 2}}

	first, err := svc.ResolveTotal(context.Background(), config, domain.ClientNonMember, domain.Duration8H, requests)
	require.NoError(t, err)
	second, err := svc.ResolveTotal(context.Background(), config, domain.ClientNonMember, domain.Duration8H, requests)
	require.NoError(t, err)

	assert.Equal(t, first.TotalCents, second.TotalCents)
	assert.Equal(t, first.LineItems, second.LineItems)
}

func TestResolveTotalNoAddons(t *testing.T) {
	svc := NewService(testCatalog(), &fakeVenueRepo{}, nopLogger{})

	quote, err := svc.ResolveTotal(context.Background(), testConfig(), domain.ClientMember, domain.Duration4H, nil)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(150000), quote.TotalCents)
	assert.True(t, quote.AddonsCents.IsZero())
	assert.Empty(t, quote.LineItems)
}

func TestQuoteByConfiguration(t *testing.T) {
	venues := &fakeVenueRepo{configs: map[int64]*domain.VenueConfiguration{10: testConfig()}}
	svc := NewService(testCatalog(), venues, nopLogger{})

	quote, config, err := svc.QuoteByConfiguration(context.Background(), 10, domain.ClientMember, domain.Duration4H, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), config.ID)
	assert.Equal(t, money.Cents(150000), quote.TotalCents)

	_, _, err = svc.QuoteByConfiguration(context.Background(), 999, domain.ClientMember, domain.Duration4H, nil)
	assert.ErrorIs(t, err, ErrConfigurationNotFound)
}

func TestListActiveAddOnsRepositoryError(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{err: errors.New("connection refused")}, &fakeVenueRepo{}, nopLogger{})

	_, err := svc.ListActiveAddOns(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
