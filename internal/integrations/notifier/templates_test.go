package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEvent(kind EventKind) *ReservationEvent {
	return &ReservationEvent{
		Kind:          kind,
		ReservationID: 1,
		ClientName:    "Maria Soto",
		VenueName:     "Salon Imperial",
		Arrangement:   "BANQUET",
		EventDate:     "2026-09-15",
		StartTime:     "18:30",
		Duration:      "4H",
		PartySize:     50,
		Total:         "2200.00",
		Recipients:    []string{"maria@example.com"},
	}
}

func TestRenderMessageConfirmed(t *testing.T) {
	event := baseEvent(EventConfirmed)
	require.NoError(t, renderMessage(event))

	assert.Equal(t, "Reservation confirmed: Salon Imperial on 2026-09-15", event.Subject)
	assert.Contains(t, event.TextBody, "has been confirmed")
	assert.Contains(t, event.TextBody, "Start time:  18:30")
	assert.Contains(t, event.HTMLBody, "<strong>confirmed</strong>")
	assert.Contains(t, event.HTMLBody, "2200.00")
}

func TestRenderMessageSubmitted(t *testing.T) {
	event := baseEvent(EventSubmitted)
	require.NoError(t, renderMessage(event))

	assert.Equal(t, "Reservation received: Salon Imperial on 2026-09-15", event.Subject)
	assert.Contains(t, event.TextBody, "received your reservation request")
	assert.Contains(t, event.HTMLBody, "confirm shortly")
}

func TestRenderMessageOmitsUnsetStartTime(t *testing.T) {
	event := baseEvent(EventConfirmed)
	event.StartTime = ""
	require.NoError(t, renderMessage(event))
	assert.NotContains(t, event.TextBody, "Start time")
	assert.NotContains(t, event.HTMLBody, "Start time")
}

func TestRenderMessageUnknownKind(t *testing.T) {
	event := baseEvent(EventKind("ARCHIVED"))
	err := renderMessage(event)
	assert.ErrorIs(t, err, ErrRenderFailed)
}
