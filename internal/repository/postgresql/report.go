package postgresql

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// ListAttendanceRows implements report.ReportRepository.
func (r *reportRepositoryImpl) ListAttendanceRows(ctx context.Context) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(u.full_name, u.email), u.email,
		       a.check_in_time, a.check_out_time, a.status, a.notes
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.check_in_time DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []report.AttendanceRow{}
	for rows.Next() {
		var row report.AttendanceRow
		err := rows.Scan(
			&row.UserName,
			&row.UserEmail,
			&row.CheckInTime,
			&row.CheckOutTime,
			&row.Status,
			&row.Notes,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListLeaveRows implements report.ReportRepository.
func (r *reportRepositoryImpl) ListLeaveRows(ctx context.Context) ([]report.LeaveRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(u.full_name, u.email), u.email,
		       l.start_date, l.end_date, l.reason, l.status,
		       l.admin_note, approver.full_name, l.created_at
		FROM leaves l
		JOIN users u ON u.id = l.user_id
		LEFT JOIN users approver ON approver.id = l.approved_by
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []report.LeaveRow{}
	for rows.Next() {
		var row report.LeaveRow
		err := rows.Scan(
			&row.UserName,
			&row.UserEmail,
			&row.StartDate,
			&row.EndDate,
			&row.Reason,
			&row.Status,
			&row.AdminNote,
			&row.ApprovedByName,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
