package attendance

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/officenet"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	officeNet  *officenet.Checker
	lateHour   int
	lateMinute int
	sessionMax time.Duration
}

func NewAttendanceService(repo attendance.AttendanceRepository, officeNet *officenet.Checker, lateAfter string, sessionMax time.Duration) (attendance.AttendanceService, error) {
	lateHour, lateMinute, err := parseWallClock(lateAfter)
	if err != nil {
		return nil, fmt.Errorf("invalid late-after time %q: %w", lateAfter, err)
	}

	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		officeNet:            officeNet,
		lateHour:             lateHour,
		lateMinute:           lateMinute,
		sessionMax:           sessionMax,
	}, nil
}

// parseWallClock parses "HH:MM" into its components.
func parseWallClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute")
	}
	return hour, minute, nil
}

// statusFor classifies a check-in time. Arriving at the cutoff exactly
// still counts as present.
func (s *AttendanceServiceImpl) statusFor(checkIn time.Time) attendance.Status {
	cutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), s.lateHour, s.lateMinute, 0, 0, checkIn.Location())
	if checkIn.After(cutoff) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	// Close forgotten sessions before accepting a new one so a stale open
	// record never coexists with today's check-in.
	if _, err := s.ExpireStale(ctx); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !s.officeNet.Allowed(req.ClientIP) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideOfficeNetwork
	}

	alreadyCheckedIn, err := s.AttendanceRepository.HasCheckedInToday(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if alreadyCheckedIn {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedInToday
	}

	now := time.Now()
	record := attendance.Attendance{
		ID:          uuid.NewString(),
		UserID:      userID,
		CheckInTime: now,
		Status:      s.statusFor(now),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created.ToResponse(), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	closed, err := s.AttendanceRepository.CloseOpen(ctx, req.AttendanceID, userID)
	if err != nil {
		if err == attendance.ErrNoOpenSession {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return closed.ToResponse(), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, userID string) (attendance.MemberAttendanceResponse, error) {
	// Close forgotten sessions first so the history never shows an open
	// session older than the allowed maximum.
	if _, err := s.ExpireStale(ctx); err != nil {
		return attendance.MemberAttendanceResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return attendance.MemberAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, r.ToResponse())
	}

	return attendance.MemberAttendanceResponse{
		UserID:     userID,
		Attendance: responses,
		Stats:      attendance.ComputeStats(records),
	}, nil
}

// ExpireStale implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExpireStale(ctx context.Context) (int64, error) {
	expired, err := s.AttendanceRepository.ExpireStale(ctx, s.sessionMax)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale sessions: %w", err)
	}
	return expired, nil
}
