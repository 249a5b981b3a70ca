package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

func TestConfigurationRates(t *testing.T) {
	member8h := money.Cents(250000)
	nonMember8h := money.Cents(400000)

	full := &VenueConfiguration{
		MemberRate4H:    150000,
		MemberRate8H:    &member8h,
		NonMemberRate4H: 220000,
		NonMemberRate8H: &nonMember8h,
	}

	assert.Equal(t, money.Cents(150000), full.MemberRate(Duration4H))
	assert.Equal(t, money.Cents(250000), full.MemberRate(Duration8H))
	assert.Equal(t, money.Cents(220000), full.NonMemberRate(Duration4H))
	assert.Equal(t, money.Cents(400000), full.NonMemberRate(Duration8H))
}

func TestConfigurationRateFallback(t *testing.T) {
	// Eight-hour rates unset: eight-hour requests fall back to the
	// four-hour rate
	partial := &VenueConfiguration{
		MemberRate4H:    150000,
		NonMemberRate4H: 220000,
	}

	assert.Equal(t, money.Cents(150000), partial.MemberRate(Duration8H))
	assert.Equal(t, money.Cents(220000), partial.NonMemberRate(Duration8H))
}

func TestIsValidArrangement(t *testing.T) {
	for _, k := range ValidArrangements {
		assert.True(t, IsValidArrangement(k), "%s", k)
	}
	assert.False(t, IsValidArrangement(ArrangementKind("CABARET")))
	assert.False(t, IsValidArrangement(ArrangementKind("")))
}

func TestIsValidDuration(t *testing.T) {
	assert.True(t, IsValidDuration(Duration4H))
	assert.True(t, IsValidDuration(Duration8H))
	assert.False(t, IsValidDuration(Duration("12H")))
}
