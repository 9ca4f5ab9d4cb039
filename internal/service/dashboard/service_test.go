package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users = append(f.users, newUser)
	return newUser, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) ListRecent(ctx context.Context, limit int) ([]user.User, error) {
	if len(f.users) > limit {
		return f.users[:limit], nil
	}
	return f.users, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context) (int64, int64, int64, error) {
	var admins, members int64
	for _, u := range f.users {
		if u.Role == user.RoleAdmin {
			admins++
		} else {
			members++
		}
	}
	return int64(len(f.users)), admins, members, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	expired bool
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	return record, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) HasCheckedInToday(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func (f *fakeAttendanceRepo) CloseOpen(ctx context.Context, id string, userID string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrNoOpenSession
}

func (f *fakeAttendanceRepo) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	f.expired = true
	return 0, nil
}

func (f *fakeAttendanceRepo) CountToday(ctx context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

func (f *fakeAttendanceRepo) ListRecentWithUser(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

type fakeAttendanceService struct {
	repo *fakeAttendanceRepo
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, userID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, userID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) ListMine(ctx context.Context, userID string) (attendance.MemberAttendanceResponse, error) {
	return attendance.MemberAttendanceResponse{}, nil
}

func (f *fakeAttendanceService) ExpireStale(ctx context.Context) (int64, error) {
	return f.repo.ExpireStale(ctx, 0)
}

func TestDashboardOverview(t *testing.T) {
	userRepo := &fakeUserRepo{
		users: []user.User{
			{ID: "u1", Email: "admin@example.com", Role: user.RoleAdmin},
			{ID: "u2", Email: "m1@example.com", Role: user.RoleMember},
			{ID: "u3", Email: "m2@example.com", Role: user.RoleMember},
		},
	}
	attendanceRepo := &fakeAttendanceRepo{
		records: []attendance.Attendance{
			{ID: "a1", UserID: "u2", Status: attendance.StatusPresent},
		},
	}
	svc := NewDashboardService(userRepo, attendanceRepo, &fakeAttendanceService{repo: attendanceRepo})

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.True(t, attendanceRepo.expired, "overview must expire stale sessions first")
	assert.Equal(t, int64(3), overview.Stats.TotalUsers)
	assert.Equal(t, int64(1), overview.Stats.TotalAdmins)
	assert.Equal(t, int64(2), overview.Stats.TotalMembers)
	assert.Equal(t, int64(1), overview.Stats.TodayAttendance)
	assert.Len(t, overview.RecentUsers, 3)
	assert.Len(t, overview.RecentAttendance, 1)
}

func TestDashboardUsers(t *testing.T) {
	userRepo := &fakeUserRepo{
		users: []user.User{
			{ID: "u1", Email: "admin@example.com", Role: user.RoleAdmin},
			{ID: "u2", Email: "m1@example.com", Role: user.RoleMember},
		},
	}
	svc := NewDashboardService(userRepo, &fakeAttendanceRepo{}, &fakeAttendanceService{repo: &fakeAttendanceRepo{}})

	roster, err := svc.Users(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, roster.Total)
	require.Len(t, roster.Users, 2)
	assert.Equal(t, "admin@example.com", roster.Users[0].Email)
}
