package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/officenet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records          []attendance.Attendance
	checkedInToday   bool
	expiredCount     int64
	expireCalls      int
	lastExpireMaxAge time.Duration
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) HasCheckedInToday(ctx context.Context, userID string) (bool, error) {
	return f.checkedInToday, nil
}

func (f *fakeAttendanceRepo) CloseOpen(ctx context.Context, id string, userID string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id && r.UserID == userID && r.CheckOutTime == nil {
			now := time.Now()
			r.CheckOutTime = &now
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNoOpenSession
}

func (f *fakeAttendanceRepo) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	f.expireCalls++
	f.lastExpireMaxAge = maxAge
	return f.expiredCount, nil
}

func (f *fakeAttendanceRepo) CountToday(ctx context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

func (f *fakeAttendanceRepo) ListRecentWithUser(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	return f.records, nil
}

func newTestService(t *testing.T, repo attendance.AttendanceRepository, whitelist []string) attendance.AttendanceService {
	t.Helper()
	svc, err := NewAttendanceService(repo, officenet.NewChecker(whitelist), "09:00", 2*time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewAttendanceServiceRejectsBadCutoff(t *testing.T) {
	_, err := NewAttendanceService(&fakeAttendanceRepo{}, officenet.NewChecker(nil), "morning", time.Hour)
	assert.Error(t, err)

	_, err = NewAttendanceService(&fakeAttendanceRepo{}, officenet.NewChecker(nil), "25:00", time.Hour)
	assert.Error(t, err)
}

func TestCheckInOutsideOfficeNetwork(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{}, []string{"10.0.0.0/8"})

	_, err := svc.CheckIn(context.Background(), "user-1", attendance.CheckInRequest{ClientIP: "203.0.113.9"})
	assert.ErrorIs(t, err, attendance.ErrOutsideOfficeNetwork)
}

func TestCheckInDuplicate(t *testing.T) {
	repo := &fakeAttendanceRepo{checkedInToday: true}
	svc := newTestService(t, repo, nil)

	_, err := svc.CheckIn(context.Background(), "user-1", attendance.CheckInRequest{ClientIP: "10.1.2.3"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedInToday)
}

func TestCheckInSuccess(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(t, repo, []string{"10.0.0.0/8"})

	lat, long := -6.2, 106.8
	record, err := svc.CheckIn(context.Background(), "user-1", attendance.CheckInRequest{
		Latitude:  &lat,
		Longitude: &long,
		ClientIP:  "10.1.2.3",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", record.UserID)
	assert.NotEmpty(t, record.ID)
	assert.Nil(t, record.CheckOutTime)
	require.NotNil(t, record.Latitude)
	assert.Equal(t, lat, *record.Latitude)
	require.Len(t, repo.records, 1)
}

func TestCheckInExpiresStaleSessionsFirst(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(t, repo, nil)

	_, err := svc.CheckIn(context.Background(), "user-1", attendance.CheckInRequest{ClientIP: "10.1.2.3"})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.expireCalls)
	assert.Equal(t, 2*time.Hour, repo.lastExpireMaxAge)
}

func TestStatusForCutoff(t *testing.T) {
	svc, err := NewAttendanceService(&fakeAttendanceRepo{}, officenet.NewChecker(nil), "09:00", time.Hour)
	require.NoError(t, err)
	impl := svc.(*AttendanceServiceImpl)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		checkIn time.Time
		want    attendance.Status
	}{
		{"early morning", day.Add(8 * time.Hour), attendance.StatusPresent},
		{"exactly at cutoff", day.Add(9 * time.Hour), attendance.StatusPresent},
		{"one second late", day.Add(9*time.Hour + time.Second), attendance.StatusLate},
		{"afternoon", day.Add(14 * time.Hour), attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, impl.statusFor(tt.checkIn))
		})
	}
}

func TestCheckOutNoOpenSession(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{}, nil)

	_, err := svc.CheckOut(context.Background(), "user-1", attendance.CheckOutRequest{
		AttendanceID: "0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01",
	})
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestListMineExpiresStaleFirst(t *testing.T) {
	repo := &fakeAttendanceRepo{
		records: []attendance.Attendance{
			{ID: "a", UserID: "user-1", Status: attendance.StatusPresent},
			{ID: "b", UserID: "user-1", Status: attendance.StatusLate},
		},
	}
	svc := newTestService(t, repo, nil)

	history, err := svc.ListMine(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, repo.lastExpireMaxAge)
	assert.Equal(t, "user-1", history.UserID)
	assert.Len(t, history.Attendance, 2)
	assert.Equal(t, 2, history.Stats.TotalDays)
	assert.Equal(t, 1, history.Stats.PresentDays)
	assert.Equal(t, 1, history.Stats.LateDays)
}
