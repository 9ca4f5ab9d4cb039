package attendance

import (
	"context"
)

type AttendanceService interface {
	// CheckIn opens today's session for the user. The client IP must be
	// inside the office network and only one check-in per day is allowed.
	CheckIn(ctx context.Context, userID string, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the user's open session.
	CheckOut(ctx context.Context, userID string, req CheckOutRequest) (AttendanceResponse, error)

	// ListMine returns the caller's full history with summary stats.
	ListMine(ctx context.Context, userID string) (MemberAttendanceResponse, error)

	// ExpireStale closes forgotten sessions as absent. Run periodically
	// and before reads that must not show stale open sessions.
	ExpireStale(ctx context.Context) (int64, error)
}
