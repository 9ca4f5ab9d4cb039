package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_stale_sessions", 10*time.Minute, j.ExpireStaleSessions)
}

// ExpireStaleSessions closes sessions whose owner forgot to check out.
func (j *AttendanceJobs) ExpireStaleSessions(ctx context.Context) error {
	expired, err := j.attendanceService.ExpireStale(ctx)
	if err != nil {
		return err
	}
	if expired > 0 {
		slog.Info("Cron: Expired stale attendance sessions", "count", expired)
	}
	return nil
}
