package domain

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

// ArrangementKind enumerates the bookable layouts of a salon.
type ArrangementKind string

const (
	ArrangementUShape     ArrangementKind = "U_SHAPE"
	ArrangementAuditorium ArrangementKind = "AUDITORIUM"
	ArrangementClassroom  ArrangementKind = "CLASSROOM"
	ArrangementBanquet    ArrangementKind = "BANQUET"
	ArrangementLounge     ArrangementKind = "LOUNGE"
	ArrangementCourtesy   ArrangementKind = "COURTESY"
	ArrangementTable12    ArrangementKind = "TABLE_12"
	ArrangementImperial   ArrangementKind = "IMPERIAL"
	ArrangementBoardroom  ArrangementKind = "BOARDROOM"
)

// ValidArrangements is the closed set of accepted layout kinds.
var ValidArrangements = []ArrangementKind{
	ArrangementUShape,
	ArrangementAuditorium,
	ArrangementClassroom,
	ArrangementBanquet,
	ArrangementLounge,
	ArrangementCourtesy,
	ArrangementTable12,
	ArrangementImperial,
	ArrangementBoardroom,
}

// IsValidArrangement reports whether kind belongs to the closed set.
func IsValidArrangement(kind ArrangementKind) bool {
	for _, k := range ValidArrangements {
		if k == kind {
			return true
		}
	}
	return false
}

// Venue represents a physical room of the club.
type Venue struct {
	ID          int64
	Name        string
	Description string
	Available   bool

	// Optional dimensional metadata in meters; nil when not surveyed.
	LengthM   *float64
	WidthM    *float64
	HeightM   *float64
	DiameterM *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VenueConfiguration is one bookable arrangement of a venue with its
// own capacity and rate table. The (VenueID, Arrangement) pair is
// unique. Eight-hour rates are optional and fall back to the
// four-hour rate when unset.
type VenueConfiguration struct {
	ID          int64
	VenueID     int64
	VenueName   string // denormalized for display and notifications
	Arrangement ArrangementKind
	Capacity    int

	MemberRate4H    money.Cents
	MemberRate8H    *money.Cents
	NonMemberRate4H money.Cents
	NonMemberRate8H *money.Cents

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberRate returns the member price for the given duration,
// falling back to the four-hour rate when the eight-hour rate is unset.
func (c *VenueConfiguration) MemberRate(d Duration) money.Cents {
	if d == Duration8H && c.MemberRate8H != nil {
		return *c.MemberRate8H
	}
	return c.MemberRate4H
}

// NonMemberRate returns the non-member price for the given duration,
// with the same eight-to-four hour fallback as MemberRate.
func (c *VenueConfiguration) NonMemberRate(d Duration) money.Cents {
	if d == Duration8H && c.NonMemberRate8H != nil {
		return *c.NonMemberRate8H
	}
	return c.NonMemberRate4H
}
