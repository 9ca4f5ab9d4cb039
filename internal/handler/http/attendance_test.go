package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	checkInErr  error
	checkOutErr error
	lastCheckIn attendance.CheckInRequest
}

func (s *stubAttendanceService) CheckIn(ctx context.Context, userID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	s.lastCheckIn = req
	if s.checkInErr != nil {
		return attendance.AttendanceResponse{}, s.checkInErr
	}
	return attendance.AttendanceResponse{ID: "att-1", UserID: userID, Status: attendance.StatusPresent}, nil
}

func (s *stubAttendanceService) CheckOut(ctx context.Context, userID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if s.checkOutErr != nil {
		return attendance.AttendanceResponse{}, s.checkOutErr
	}
	return attendance.AttendanceResponse{ID: req.AttendanceID, UserID: userID}, nil
}

func (s *stubAttendanceService) ListMine(ctx context.Context, userID string) (attendance.MemberAttendanceResponse, error) {
	return attendance.MemberAttendanceResponse{UserID: userID}, nil
}

func (s *stubAttendanceService) ExpireStale(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestCheckInHandlerEmptyBody(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/member/attendance/checkin", strings.NewReader(""))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	// No geolocation still checks in
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckInHandlerForwardedIP(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/member/attendance/checkin", strings.NewReader("{}"))
	req.Header.Set("X-Forwarded-For", "192.168.1.10, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "192.168.1.10", svc.lastCheckIn.ClientIP)
}

func TestCheckInHandlerInvalidCoordinates(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	body := `{"latitude": 120.0, "longitude": 10.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/member/attendance/checkin", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "latitude")
}

func TestCheckInHandlerOutsideOffice(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{checkInErr: attendance.ErrOutsideOfficeNetwork})

	req := httptest.NewRequest(http.MethodPost, "/api/member/attendance/checkin", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckInHandlerAlreadyCheckedIn(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{checkInErr: attendance.ErrAlreadyCheckedInToday})

	req := httptest.NewRequest(http.MethodPost, "/api/member/attendance/checkin", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckOutHandlerValidation(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/member/attendance/checkout", strings.NewReader(`{"attendance_id":"nope"}`))
	rec := httptest.NewRecorder()
	handler.CheckOut(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCheckOutHandlerNoOpenSession(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{checkOutErr: attendance.ErrNoOpenSession})

	body := `{"attendance_id":"0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/member/attendance/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CheckOut(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
