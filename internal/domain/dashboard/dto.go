package dashboard

import (
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
)

// Stats is the headline counter block on the admin dashboard.
type Stats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalAdmins     int64 `json:"total_admins"`
	TotalMembers    int64 `json:"total_members"`
	TodayAttendance int64 `json:"today_attendance"`
}

// Overview aggregates the dashboard payload.
type Overview struct {
	Stats            Stats                           `json:"stats"`
	RecentUsers      []user.Profile                  `json:"recent_users"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
}
