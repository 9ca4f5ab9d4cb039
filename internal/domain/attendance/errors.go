package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedInToday = errors.New("already checked in today")
	ErrNoOpenSession         = errors.New("no open check-in found for this record")
	ErrOutsideOfficeNetwork  = errors.New("check-in is only allowed from the office network")
	ErrAttendanceNotFound    = errors.New("attendance record not found")
)
