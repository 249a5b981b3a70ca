package domain

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/pkg/types"
)

// BlackoutReason categorizes why a venue is blocked.
type BlackoutReason string

const (
	ReasonMaintenance  BlackoutReason = "MAINTENANCE"
	ReasonPrivateEvent BlackoutReason = "PRIVATE_EVENT"
	ReasonRepair       BlackoutReason = "REPAIR"
	ReasonOther        BlackoutReason = "OTHER"
)

// IsValidBlackoutReason reports whether r is a known reason category.
func IsValidBlackoutReason(r BlackoutReason) bool {
	switch r {
	case ReasonMaintenance, ReasonPrivateEvent, ReasonRepair, ReasonOther:
		return true
	}
	return false
}

// BlackoutPeriod is a date range during which a venue cannot be
// booked. Time-of-day bounds are optional and display-only: an active
// blackout matching the date blocks the entire day regardless of the
// requested start time.
type BlackoutPeriod struct {
	ID      int64
	VenueID int64

	StartDate time.Time
	EndDate   time.Time
	StartTime types.TimeString // optional
	EndTime   types.TimeString // optional

	Reason      BlackoutReason
	Description string
	Active      bool

	CreatedAt time.Time
}

// Normalize clamps malformed ranges where the end date precedes the
// start date, treating the record as a single-day blackout. Stored
// rows with inconsistent dates exist; normalization happens at the
// read boundary of the registry so callers always see a valid range.
func (b *BlackoutPeriod) Normalize() {
	if b.EndDate.Before(b.StartDate) {
		b.EndDate = b.StartDate
	}
}

// Contains reports whether the normalized range includes date,
// inclusive on both ends. Inactive blackouts never match.
func (b *BlackoutPeriod) Contains(date time.Time) bool {
	if !b.Active {
		return false
	}
	start := truncateToDay(b.StartDate)
	end := truncateToDay(b.EndDate)
	if end.Before(start) {
		end = start
	}
	d := truncateToDay(date)
	return !d.Before(start) && !d.After(end)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BlockReasonCode identifies why a booking request cannot proceed.
type BlockReasonCode string

const (
	BlockCapacityExceeded BlockReasonCode = "CAPACITY_EXCEEDED"
	BlockVenueBlocked     BlockReasonCode = "VENUE_BLOCKED"
)

// BlockReason is one machine-readable cause of unavailability.
// All applicable reasons are reported together so callers can render
// a complete correction list in one pass.
type BlockReason struct {
	Code    BlockReasonCode
	Message string

	// Blackout details, set when Code is BlockVenueBlocked.
	BlackoutReason *BlackoutReason
	BlockedFrom    *time.Time
	BlockedUntil   *time.Time
}
