package notifier

// EventKind тип события резервации
type EventKind string

const (
	// EventSubmitted заявка принята и ожидает подтверждения
	EventSubmitted EventKind = "SUBMITTED"

	// EventConfirmed резервация подтверждена персоналом
	EventConfirmed EventKind = "CONFIRMED"
)

// ReservationEvent событие резервации, публикуемое в очередь.
// Письмо рендерится на стороне издателя: потребителю остаётся доставка
// и запись в журнал отправки.
type ReservationEvent struct {
	Kind          EventKind `json:"kind"`
	ReservationID int64     `json:"reservation_id"`
	ClientName    string    `json:"client_name"`
	VenueName     string    `json:"venue_name"`
	Arrangement   string    `json:"arrangement"`
	EventDate     string    `json:"event_date"`
	StartTime     string    `json:"start_time,omitempty"`
	Duration      string    `json:"duration"`
	PartySize     int       `json:"party_size"`
	Total         string    `json:"total"`

	Subject    string   `json:"subject"`
	TextBody   string   `json:"text_body"`
	HTMLBody   string   `json:"html_body"`
	Recipients []string `json:"recipients"`

	OccurredAt string `json:"occurred_at"` // RFC 3339
}
