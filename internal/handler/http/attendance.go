package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/officenet"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	// An empty body is a valid check-in without geolocation
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := checkInReq.Validate(); err != nil {
		slog.Error("CheckIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	checkInReq.ClientIP = officenet.ClientIP(r)
	userID := middleware.UserID(r.Context())

	record, err := h.attendanceService.CheckIn(r.Context(), userID, checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked in", "user_id", userID, "status", record.Status)
	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var checkOutReq attendance.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := checkOutReq.Validate(); err != nil {
		slog.Error("CheckOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userID := middleware.UserID(r.Context())

	record, err := h.attendanceService.CheckOut(r.Context(), userID, checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked out", "user_id", userID)
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	history, err := h.attendanceService.ListMine(r.Context(), userID)
	if err != nil {
		slog.Error("ListMine service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
