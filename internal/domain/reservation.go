package domain

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/pkg/money"
	"github.com/clubelmeta/CEM-SalonService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

// ValidTransitions is the closed transition table of the reservation
// state machine. A transition is legal iff the target status appears
// in the slice keyed by the current status. CANCELLED and COMPLETED
// are terminal.
var ValidTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransitionTo reports whether the state machine permits moving
// from the current status to target.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, allowed := range ValidTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s ReservationStatus) IsTerminal() bool {
	return len(ValidTransitions[s]) == 0
}

// IsValidStatus reports whether s is one of the four known statuses.
func IsValidStatus(s ReservationStatus) bool {
	_, ok := ValidTransitions[s]
	return ok
}

// ClientType classifies the client for rate selection.
type ClientType string

const (
	ClientMember    ClientType = "MEMBER"
	ClientNonMember ClientType = "NON_MEMBER"
)

// Duration enumerates the bookable event durations.
type Duration string

const (
	Duration4H Duration = "4H"
	Duration8H Duration = "8H"
)

// IsValidDuration reports whether d is a known duration.
func IsValidDuration(d Duration) bool {
	return d == Duration4H || d == Duration8H
}

// Reservation is a booking request against one venue configuration.
//
// TotalCents is computed once at submission time when absent or zero
// and is authoritative thereafter: later catalog price changes or
// unrelated field edits never silently recompute it.
type Reservation struct {
	ID              int64
	ConfigurationID int64

	ClientName  string
	ClientEmail string
	ClientPhone string
	ClientType  ClientType
	EntityName  *string // company/entity, optional

	EventDate       time.Time
	StartTime       types.TimeString // optional, zero when unset
	Duration        Duration
	DecorationHours int
	PartySize       int

	TotalCents money.Cents
	Status     ReservationStatus
	Notes      string

	AddOns []ReservationAddOn

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NeedsPricing reports whether the total must be computed at creation.
func (r *Reservation) NeedsPricing() bool {
	return r.TotalCents.IsZero()
}

// IsActive reports whether the reservation still occupies its date
// (pending or confirmed).
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationAddOn is a line item attaching an add-on service to a
// reservation. UnitPriceCents is the catalog price captured at
// submission time; catalog changes never retroactively alter it.
type ReservationAddOn struct {
	ID            int64
	ReservationID int64
	AddOnID       int64
	AddOnName     string // denormalized for display
	Quantity      int
	UnitPriceCents money.Cents
	SubtotalCents  money.Cents // Quantity × UnitPriceCents
	Notes          string
}

// ReservationFilter describes staff-side listing criteria.
type ReservationFilter struct {
	VenueID         *int64
	ConfigurationID *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *ReservationStatus
	IncludeInactive bool // include cancelled reservations
}

// StatusCounts aggregates reservation counts and revenue per status
// for the staff dashboard. Revenue counts confirmed and completed
// reservations only.
type StatusCounts struct {
	Pending      int
	Confirmed    int
	Cancelled    int
	Completed    int
	RevenueCents money.Cents
}
