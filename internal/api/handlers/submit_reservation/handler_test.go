package submit_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	submitReservation "github.com/clubelmeta/CEM-SalonService/internal/usecase/submit_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *submitReservation.Response
	err  error
	req  *submitReservation.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *submitReservation.Request) (*submitReservation.Response, error) {
	f.req = req
	return f.resp, f.err
}

const validBody = `{
	"configurationId": 10,
	"clientName": "Maria Soto",
	"clientEmail": "maria@example.com",
	"clientPhone": "+58 412 5550199",
	"clientType": "NON_MEMBER",
	"eventDate": "2026-09-15",
	"startTime": "18:30",
	"duration": "4H",
	"partySize": 50
}`

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nil, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{resp: &submitReservation.Response{
		ID:              1,
		ConfigurationID: 10,
		VenueName:       "Salon Imperial",
		Arrangement:     "BANQUET",
		EventDate:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:30",
		Duration:        "4H",
		PartySize:       50,
		Status:          "PENDING",
		Base:            "2200.00",
		Addons:          "0.00",
		Total:           "2200.00",
		CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "2200.00", resp.Total)
	assert.Equal(t, "2026-09-15", resp.EventDate)

	// Date and time parsed into the use case request
	require.NotNil(t, uc.req)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), uc.req.EventDate)
	assert.Equal(t, "18:30", uc.req.StartTime.String())
}

func TestHandleFieldErrorsGive400(t *testing.T) {
	uc := &fakeUseCase{err: &submitReservation.RejectionError{
		Fields: []submitReservation.FieldError{
			{Field: "clientName", Message: "must be at least 2 characters"},
			{Field: "partySize", Message: "must be positive"},
		},
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp RejectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Fields, 2)
	assert.Empty(t, resp.Reasons)
}

func TestHandleBlockReasonsGive409(t *testing.T) {
	reason := domain.ReasonMaintenance
	from := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{err: &submitReservation.RejectionError{
		Reasons: []domain.BlockReason{
			{
				Code:           domain.BlockVenueBlocked,
				Message:        "venue is blocked",
				BlackoutReason: &reason,
				BlockedFrom:    &from,
				BlockedUntil:   &until,
			},
		},
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp RejectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reasons, 1)
	assert.Equal(t, "VENUE_BLOCKED", resp.Reasons[0].Code)
	require.NotNil(t, resp.Reasons[0].BlockedFrom)
	assert.Equal(t, "2026-09-14", *resp.Reasons[0].BlockedFrom)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "configuration not found", err: submitReservation.ErrConfigurationNotFound, code: http.StatusNotFound},
		{name: "invalid membership code", err: submitReservation.ErrInvalidMembershipCode, code: http.StatusUnprocessableEntity},
		{name: "add-on not found", err: submitReservation.ErrAddOnNotFound, code: http.StatusBadRequest},
		{name: "rate not configured", err: submitReservation.ErrRateNotConfigured, code: http.StatusInternalServerError},
		{name: "internal", err: submitReservation.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandleMalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"configurationId": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadDate(t *testing.T) {
	body := strings.Replace(validBody, "2026-09-15", "15/09/2026", 1)
	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
