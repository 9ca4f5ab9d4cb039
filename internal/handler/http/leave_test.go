package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

type stubLeaveService struct {
	createErr error
	decideErr error
}

func (s *stubLeaveService) Create(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if s.createErr != nil {
		return leave.LeaveResponse{}, s.createErr
	}
	return leave.LeaveResponse{ID: "leave-1", UserID: userID, Status: leave.StatusPending}, nil
}

func (s *stubLeaveService) ListMine(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	return []leave.LeaveResponse{}, nil
}

func (s *stubLeaveService) ListAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	return []leave.LeaveResponse{}, nil
}

func (s *stubLeaveService) Decide(ctx context.Context, adminID string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	if s.decideErr != nil {
		return leave.LeaveResponse{}, s.decideErr
	}
	return leave.LeaveResponse{ID: req.LeaveID, Status: leave.Status(req.Status)}, nil
}

func TestLeaveCreateHandler(t *testing.T) {
	handler := NewLeaveHandler(&stubLeaveService{})

	body := `{"start_date":"2025-06-02","end_date":"2025-06-06","reason":"Family event"}`
	req := httptest.NewRequest(http.MethodPost, "/api/member/leaves", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLeaveCreateHandlerBadRange(t *testing.T) {
	handler := NewLeaveHandler(&stubLeaveService{})

	body := `{"start_date":"2025-06-06","end_date":"2025-06-02","reason":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/member/leaves", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLeaveDecideHandlerAlreadyProcessed(t *testing.T) {
	handler := NewLeaveHandler(&stubLeaveService{decideErr: leave.ErrLeaveAlreadyProcessed})

	body := `{"leave_id":"0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01","status":"approved"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/leaves/approve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Decide(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLeaveDecideHandlerUnknown(t *testing.T) {
	handler := NewLeaveHandler(&stubLeaveService{decideErr: leave.ErrLeaveRequestNotFound})

	body := `{"leave_id":"0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01","status":"rejected"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/leaves/approve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Decide(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaveDecideHandlerInvalidStatus(t *testing.T) {
	handler := NewLeaveHandler(&stubLeaveService{})

	body := `{"leave_id":"0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01","status":"maybe"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/leaves/approve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Decide(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
