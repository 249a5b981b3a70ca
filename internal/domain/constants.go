package domain

// Business validation constants
const (
	MinClientNameLength = 2
	MinPhoneLength      = 7
	MaxNotesLength      = 2000
	MaxDecorationHours  = 12
	MaxAddOnQuantity    = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Event start time window: bookings may start between 08:30 and
// 02:00 of the following night. Times after midnight are compared
// as hour+24 so the window stays contiguous.
const (
	EarliestStartMinutes = 8*60 + 30 // 08:30
	LatestStartMinutes   = (2 + 24) * 60 // 02:00 next day
)

// StaffRole identifies the staff tier for guarded operations.
type StaffRole string

const (
	RoleAdmin     StaffRole = "ADMIN"
	RoleAssistant StaffRole = "ASSISTANT"
)

// Actor is the staff member performing a guarded operation.
type Actor struct {
	ID   int64
	Role StaffRole
}

// CanTransition reports whether the actor's role permits the given
// target status. Admins may perform any legal transition; assistants
// may only confirm or cancel.
func (a Actor) CanTransition(target ReservationStatus) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleAssistant:
		return target == StatusConfirmed || target == StatusCancelled
	default:
		return false
	}
}
