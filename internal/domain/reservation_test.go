package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending to completed", from: StatusPending, to: StatusCompleted, want: true},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, want: false},
		{name: "cancelled to confirmed", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "self transition", from: StatusPending, to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus(ReservationStatus("ARCHIVED")))
	assert.False(t, IsValidStatus(ReservationStatus("")))
}

func TestActorCanTransition(t *testing.T) {
	admin := Actor{ID: 1, Role: RoleAdmin}
	assistant := Actor{ID: 2, Role: RoleAssistant}
	unknown := Actor{ID: 3, Role: StaffRole("INTERN")}

	// Admin may perform any legal transition
	for _, target := range []ReservationStatus{StatusConfirmed, StatusCancelled, StatusCompleted} {
		assert.True(t, admin.CanTransition(target), "admin -> %s", target)
	}

	// Assistant may only confirm or cancel
	assert.True(t, assistant.CanTransition(StatusConfirmed))
	assert.True(t, assistant.CanTransition(StatusCancelled))
	assert.False(t, assistant.CanTransition(StatusCompleted))

	assert.False(t, unknown.CanTransition(StatusConfirmed))
}

func TestReservationNeedsPricing(t *testing.T) {
	r := &Reservation{}
	assert.True(t, r.NeedsPricing())

	r.TotalCents = money.Cents(150000)
	assert.False(t, r.NeedsPricing())
}

func TestReservationIsActive(t *testing.T) {
	for status, want := range map[ReservationStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: false,
	} {
		r := &Reservation{Status: status}
		assert.Equal(t, want, r.IsActive(), "status %s", status)
	}
}
