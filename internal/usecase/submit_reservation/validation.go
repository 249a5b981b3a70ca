package submit_reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

// validateRequest валидирует поля заявки и возвращает ВСЕ найденные
// ошибки разом, а не первую попавшуюся
func validateRequest(req *Request, now time.Time) []FieldError {
	fields := make([]FieldError, 0)

	if req.ConfigurationID <= 0 {
		fields = append(fields, FieldError{Field: "configurationId", Message: "must be positive"})
	}

	if len(strings.TrimSpace(req.ClientName)) < domain.MinClientNameLength {
		fields = append(fields, FieldError{Field: "clientName", Message: fmt.Sprintf("must be at least %d characters", domain.MinClientNameLength)})
	}

	if req.ClientEmail == "" {
		fields = append(fields, FieldError{Field: "clientEmail", Message: "is required"})
	} else if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		fields = append(fields, FieldError{Field: "clientEmail", Message: "is not a valid email address"})
	}

	if countDigits(req.ClientPhone) < domain.MinPhoneLength {
		fields = append(fields, FieldError{Field: "clientPhone", Message: fmt.Sprintf("must contain at least %d digits", domain.MinPhoneLength)})
	}

	clientType := domain.ClientType(req.ClientType)
	if clientType != domain.ClientMember && clientType != domain.ClientNonMember {
		fields = append(fields, FieldError{Field: "clientType", Message: "must be MEMBER or NON_MEMBER"})
	}

	// Код членства обязателен для членов клуба
	if clientType == domain.ClientMember && (req.MembershipCode == nil || strings.TrimSpace(*req.MembershipCode) == "") {
		fields = append(fields, FieldError{Field: "membershipCode", Message: "is required for MEMBER reservations"})
	}

	if req.EventDate.IsZero() {
		fields = append(fields, FieldError{Field: "eventDate", Message: "is required"})
	} else if isDateInPast(req.EventDate, now) {
		fields = append(fields, FieldError{Field: "eventDate", Message: "must not be in the past"})
	}

	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			fields = append(fields, FieldError{Field: "startTime", Message: "must be in HH:MM format"})
		} else if !isStartTimeInWindow(req.StartTime.String()) {
			fields = append(fields, FieldError{Field: "startTime", Message: "must be between 08:30 and 02:00"})
		}
	}

	if !domain.IsValidDuration(domain.Duration(req.Duration)) {
		fields = append(fields, FieldError{Field: "duration", Message: "must be 4H or 8H"})
	}

	if req.DecorationHours < 0 || req.DecorationHours > domain.MaxDecorationHours {
		fields = append(fields, FieldError{Field: "decorationHours", Message: fmt.Sprintf("must be between 0 and %d", domain.MaxDecorationHours)})
	}

	if req.PartySize <= 0 {
		fields = append(fields, FieldError{Field: "partySize", Message: "must be positive"})
	}

	if len(req.Notes) > domain.MaxNotesLength {
		fields = append(fields, FieldError{Field: "notes", Message: fmt.Sprintf("must not exceed %d characters", domain.MaxNotesLength)})
	}

	if req.Total != nil {
		if amount, err := money.Parse(*req.Total); err != nil {
			fields = append(fields, FieldError{Field: "total", Message: "must be a decimal amount with at most 2 fraction digits"})
		} else if amount.IsNegative() {
			fields = append(fields, FieldError{Field: "total", Message: "must not be negative"})
		}
	}

	for i, item := range req.AddOns {
		if item.AddOnID <= 0 {
			fields = append(fields, FieldError{Field: fmt.Sprintf("addOns[%d].addOnId", i), Message: "must be positive"})
		}
		if item.Quantity <= 0 || item.Quantity > domain.MaxAddOnQuantity {
			fields = append(fields, FieldError{Field: fmt.Sprintf("addOns[%d].quantity", i), Message: fmt.Sprintf("must be between 1 and %d", domain.MaxAddOnQuantity)})
		}
	}

	return fields
}

// isDateInPast проверяет, что дата мероприятия раньше сегодняшней
func isDateInPast(eventDate time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	date := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, eventDate.Location())
	return date.Before(today)
}

// isStartTimeInWindow проверяет окно начала мероприятия 08:30-02:00.
// Времена после полуночи сравниваются как час+24, чтобы окно
// оставалось непрерывным: "01:30" трактуется как 25:30.
func isStartTimeInWindow(startTime string) bool {
	t, err := time.Parse(domain.TimeFormat, startTime)
	if err != nil {
		return false
	}

	minutes := t.Hour()*60 + t.Minute()
	if minutes < 8*60 {
		minutes += 24 * 60
	}

	return minutes >= domain.EarliestStartMinutes && minutes <= domain.LatestStartMinutes
}

// countDigits считает цифры в строке телефона
func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
