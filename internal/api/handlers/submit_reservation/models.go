package submit_reservation

import (
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	submitReservation "github.com/clubelmeta/CEM-SalonService/internal/usecase/submit_reservation"
	"github.com/clubelmeta/CEM-SalonService/pkg/types"
)

// AddOnItemRequest позиция услуги в HTTP запросе
type AddOnItemRequest struct {
	AddOnID  int64  `json:"addOnId"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// SubmitReservationRequest HTTP request model
type SubmitReservationRequest struct {
	ConfigurationID int64   `json:"configurationId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	ClientType      string  `json:"clientType"` // MEMBER | NON_MEMBER
	MembershipCode  *string `json:"membershipCode,omitempty"`
	EntityName      *string `json:"entityName,omitempty"`

	EventDate       string `json:"eventDate"`           // "2026-10-15"
	StartTime       string `json:"startTime,omitempty"` // "18:30"
	Duration        string `json:"duration"`            // 4H | 8H
	DecorationHours int    `json:"decorationHours"`
	PartySize       int    `json:"partySize"`

	Total  *string            `json:"total,omitempty"`
	Notes  string             `json:"notes,omitempty"`
	AddOns []AddOnItemRequest `json:"addOns,omitempty"`
}

// LineItemResponse позиция услуги в HTTP ответе
type LineItemResponse struct {
	AddOnID   int64  `json:"addOnId"`
	AddOnName string `json:"addOnName"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	ConfigurationID int64  `json:"configurationId"`
	VenueName       string `json:"venueName"`
	Arrangement     string `json:"arrangement"`
	EventDate       string `json:"eventDate"`
	StartTime       string `json:"startTime,omitempty"`
	Duration        string `json:"duration"`
	PartySize       int    `json:"partySize"`
	Status          string `json:"status"`

	Base      string             `json:"base,omitempty"`
	Addons    string             `json:"addons"`
	Total     string             `json:"total"`
	LineItems []LineItemResponse `json:"lineItems,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// RejectionResponse ответ при отклонении заявки: ошибки полей
// и причины недоступности возвращаются одним списком
type RejectionResponse struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Fields  []FieldErrorResponse  `json:"fields,omitempty"`
	Reasons []BlockReasonResponse `json:"reasons,omitempty"`
}

// FieldErrorResponse ошибка валидации поля
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BlockReasonResponse причина недоступности даты
type BlockReasonResponse struct {
	Code           string  `json:"code"`
	Message        string  `json:"message"`
	BlackoutReason *string `json:"blackoutReason,omitempty"`
	BlockedFrom    *string `json:"blockedFrom,omitempty"`
	BlockedUntil   *string `json:"blockedUntil,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReservationRequest) ToUseCaseRequest() (*submitReservation.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	var startTime types.TimeString
	if r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}

	addOns := make([]submitReservation.AddOnItem, 0, len(r.AddOns))
	for _, item := range r.AddOns {
		addOns = append(addOns, submitReservation.AddOnItem{
			AddOnID:  item.AddOnID,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	return &submitReservation.Request{
		ConfigurationID: r.ConfigurationID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		ClientType:      r.ClientType,
		MembershipCode:  r.MembershipCode,
		EntityName:      r.EntityName,
		EventDate:       eventDate,
		StartTime:       startTime,
		Duration:        r.Duration,
		DecorationHours: r.DecorationHours,
		PartySize:       r.PartySize,
		Total:           r.Total,
		Notes:           r.Notes,
		AddOns:          addOns,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitReservation.Response) *ReservationResponse {
	result := &ReservationResponse{
		ID:              resp.ID,
		ConfigurationID: resp.ConfigurationID,
		VenueName:       resp.VenueName,
		Arrangement:     resp.Arrangement,
		EventDate:       resp.EventDate.Format(domain.DateFormat),
		Duration:        resp.Duration,
		PartySize:       resp.PartySize,
		Status:          resp.Status,
		Base:            resp.Base,
		Addons:          resp.Addons,
		Total:           resp.Total,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}

	if !resp.StartTime.IsZero() {
		result.StartTime = resp.StartTime.String()
	}

	for _, line := range resp.LineItems {
		result.LineItems = append(result.LineItems, LineItemResponse{
			AddOnID:   line.AddOnID,
			AddOnName: line.AddOnName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	return result
}

// FromRejection конвертирует RejectionError в HTTP response
func FromRejection(code int, message string, rejection *submitReservation.RejectionError) *RejectionResponse {
	resp := &RejectionResponse{
		Code:    code,
		Message: message,
	}

	for _, f := range rejection.Fields {
		resp.Fields = append(resp.Fields, FieldErrorResponse{
			Field:   f.Field,
			Message: f.Message,
		})
	}

	for _, reason := range rejection.Reasons {
		item := BlockReasonResponse{
			Code:    string(reason.Code),
			Message: reason.Message,
		}
		if reason.BlackoutReason != nil {
			s := string(*reason.BlackoutReason)
			item.BlackoutReason = &s
		}
		if reason.BlockedFrom != nil {
			s := reason.BlockedFrom.Format(domain.DateFormat)
			item.BlockedFrom = &s
		}
		if reason.BlockedUntil != nil {
			s := reason.BlockedUntil.Format(domain.DateFormat)
			item.BlockedUntil = &s
		}
		resp.Reasons = append(resp.Reasons, item)
	}

	return resp
}
