package dashboard

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
)

// recentLimit caps the activity feeds on the dashboard.
const recentLimit = 10

type DashboardServiceImpl struct {
	userRepo          user.UserRepository
	attendanceRepo    attendance.AttendanceRepository
	attendanceService attendance.AttendanceService
}

func NewDashboardService(userRepo user.UserRepository, attendanceRepo attendance.AttendanceRepository, attendanceService attendance.AttendanceService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		userRepo:          userRepo,
		attendanceRepo:    attendanceRepo,
		attendanceService: attendanceService,
	}
}

// Overview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.Overview, error) {
	// Expire forgotten sessions so the feed reflects reality.
	if _, err := s.attendanceService.ExpireStale(ctx); err != nil {
		return dashboard.Overview{}, err
	}

	total, admins, members, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to count users: %w", err)
	}

	todayAttendance, err := s.attendanceRepo.CountToday(ctx)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	recentUsers, err := s.userRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list recent users: %w", err)
	}

	recentAttendance, err := s.attendanceRepo.ListRecentWithUser(ctx, recentLimit)
	if err != nil {
		return dashboard.Overview{}, fmt.Errorf("failed to list recent attendance: %w", err)
	}

	overview := dashboard.Overview{
		Stats: dashboard.Stats{
			TotalUsers:      total,
			TotalAdmins:     admins,
			TotalMembers:    members,
			TodayAttendance: todayAttendance,
		},
		RecentUsers:      make([]user.Profile, 0, len(recentUsers)),
		RecentAttendance: make([]attendance.AttendanceResponse, 0, len(recentAttendance)),
	}
	for _, u := range recentUsers {
		overview.RecentUsers = append(overview.RecentUsers, u.ToProfile())
	}
	for _, a := range recentAttendance {
		overview.RecentAttendance = append(overview.RecentAttendance, a.ToResponse())
	}

	return overview, nil
}

// Users implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Users(ctx context.Context) (user.RosterResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return user.RosterResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	roster := user.RosterResponse{
		Total: len(users),
		Users: make([]user.Profile, 0, len(users)),
	}
	for _, u := range users {
		roster.Users = append(roster.Users, u.ToProfile())
	}
	return roster, nil
}
