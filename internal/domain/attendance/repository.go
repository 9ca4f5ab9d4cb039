package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// ListByUser retrieves all records for a user, newest check-in first
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// HasCheckedInToday reports whether the user already has a record
	// whose check-in falls on the current day.
	// Used to prevent double check-in.
	HasCheckedInToday(ctx context.Context, userID string) (bool, error)

	// CloseOpen sets the check-out time on the user's record when it is
	// still open. Returns ErrNoOpenSession when no such record exists.
	CloseOpen(ctx context.Context, id string, userID string) (Attendance, error)

	// ExpireStale marks open sessions older than maxAge as absent with
	// check_out = check_in + maxAge. Returns the number of rows expired.
	ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error)

	// CountToday counts records checked in since midnight.
	CountToday(ctx context.Context) (int64, error)

	// ListRecentWithUser returns the latest records joined with user
	// name/email for the admin dashboard.
	ListRecentWithUser(ctx context.Context, limit int) ([]Attendance, error)
}
