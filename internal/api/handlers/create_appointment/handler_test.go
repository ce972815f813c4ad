package create_appointment

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

	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-GarageService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	gotReq *createAppointment.Request
	resp   *createAppointment.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	mux := http.NewServeMux()
	if withUser {
		mux.Handle("/api/v1/appointments", middleware.Auth(http.HandlerFunc(handler.Handle)))
	} else {
		mux.HandleFunc("/api/v1/appointments", handler.Handle)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if withUser {
		req.Header.Set("X-User-ID", "5")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandle_CreatesAppointment(t *testing.T) {
	start := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		AppointmentID: 100,
		Status:        "confirmed",
		StartTime:     start,
		EndTime:       start.Add(45 * time.Minute),
	}}

	rec := doRequest(t, uc, `{"mechanicId":1,"serviceId":7,"timeSlotId":3}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// ID клиента приходит из заголовка, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.ClientID)
	assert.Equal(t, int64(3), uc.gotReq.TimeSlotID)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.AppointmentID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "09:45", resp.EndTime)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"mechanicId":1,"serviceId":7,"timeSlotId":3}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "service not found", err: createAppointment.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "slot not found", err: createAppointment.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "no slots", err: createAppointment.ErrNoSlotsAvailable, wantStatus: http.StatusNotFound},
		{name: "capacity", err: createAppointment.ErrNotEnoughAdjacentSlots, wantStatus: http.StatusBadRequest},
		{name: "conflict", err: createAppointment.ErrSlotConflict, wantStatus: http.StatusConflict},
		{name: "invalid input", err: createAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := doRequest(t, uc, `{"mechanicId":1,"serviceId":7,"timeSlotId":3}`, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{broken`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
