package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, user_id, check_in_time, check_out_time, status, notes, latitude, longitude, created_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.CheckInTime,
		&a.CheckOutTime,
		&a.Status,
		&a.Notes,
		&a.Latitude,
		&a.Longitude,
		&a.CreatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, user_id, check_in_time, status, notes, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.CheckInTime,
		record.Status,
		record.Notes,
		record.Latitude,
		record.Longitude,
	))
	if err != nil {
		return attendance.Attendance{}, err
	}
	return created, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1
		ORDER BY check_in_time DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// HasCheckedInToday implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) HasCheckedInToday(ctx context.Context, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM attendance
			WHERE user_id = $1
			  AND check_in_time >= DATE_TRUNC('day', NOW())
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CloseOpen implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CloseOpen(ctx context.Context, id string, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out_time = NOW()
		WHERE id = $1 AND user_id = $2 AND check_out_time IS NULL
		RETURNING ` + attendanceColumns

	closed, err := scanAttendance(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenSession
		}
		return attendance.Attendance{}, err
	}
	return closed, nil
}

// ExpireStale implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Forgotten sessions get closed as absent exactly maxAge after check-in
	// so durations never grow unbounded.
	query := `
		UPDATE attendance
		SET check_out_time = check_in_time + $1, status = 'absent'
		WHERE check_out_time IS NULL
		  AND check_in_time < NOW() - $1
	`

	tag, err := q.Exec(ctx, query, maxAge)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CountToday implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountToday(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM attendance
		WHERE check_in_time >= DATE_TRUNC('day', NOW())
	`

	var count int64
	err := q.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecentWithUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListRecentWithUser(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.check_in_time, a.check_out_time, a.status,
		       a.notes, a.latitude, a.longitude, a.created_at,
		       u.full_name, u.email
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.check_in_time DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.CheckInTime,
			&a.CheckOutTime,
			&a.Status,
			&a.Notes,
			&a.Latitude,
			&a.Longitude,
			&a.CreatedAt,
			&a.UserName,
			&a.UserEmail,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
