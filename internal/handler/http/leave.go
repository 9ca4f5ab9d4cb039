package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Leave create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Leave create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userID := middleware.UserID(r.Context())

	created, err := h.leaveService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Leave create service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "user_id", userID, "leave_id", created.ID)
	response.Created(w, "Leave request submitted", created)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	requests, err := h.leaveService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("Leave list service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListAll implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		slog.Error("Leave list all service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var decisionReq leave.DecisionRequest

	if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
		slog.Error("Leave decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := decisionReq.Validate(); err != nil {
		slog.Error("Leave decide validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	adminID := middleware.UserID(r.Context())

	decided, err := h.leaveService.Decide(r.Context(), adminID, decisionReq)
	if err != nil {
		slog.Error("Leave decide service error", "error", err, "leave_id", decisionReq.LeaveID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request decided", "leave_id", decided.ID, "status", decided.Status, "admin_id", adminID)
	response.SuccessWithMessage(w, "Leave request updated", decided)
}
