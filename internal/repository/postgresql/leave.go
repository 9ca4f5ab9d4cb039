package postgresql

import (
	"context"
	"errors"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, user_id, start_date, end_date, reason, status, admin_note, approved_by, created_at, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		req.StartDate,
		req.EndDate,
		req.Reason,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.Status,
		&created.AdminNote,
		&created.ApprovedBy,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, reason, status, admin_note, approved_by, created_at, updated_at
		FROM leaves
		WHERE id = $1
	`

	var found leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.StartDate,
		&found.EndDate,
		&found.Reason,
		&found.Status,
		&found.AdminNote,
		&found.ApprovedBy,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return found, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.start_date, l.end_date, l.reason, l.status,
		       l.admin_note, l.approved_by, l.created_at, l.updated_at,
		       approver.full_name
		FROM leaves l
		LEFT JOIN users approver ON approver.id = l.approved_by
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		var l leave.LeaveRequest
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.StartDate,
			&l.EndDate,
			&l.Reason,
			&l.Status,
			&l.AdminNote,
			&l.ApprovedBy,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.ApprovedByName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Pending requests surface first so admins see what still needs a
	// decision, then approved, then rejected.
	query := `
		SELECT l.id, l.user_id, l.start_date, l.end_date, l.reason, l.status,
		       l.admin_note, l.approved_by, l.created_at, l.updated_at,
		       u.full_name, u.email, approver.full_name
		FROM leaves l
		JOIN users u ON u.id = l.user_id
		LEFT JOIN users approver ON approver.id = l.approved_by
		ORDER BY CASE l.status WHEN 'pending' THEN 1 WHEN 'approved' THEN 2 WHEN 'rejected' THEN 3 END,
		         l.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		var l leave.LeaveRequest
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.StartDate,
			&l.EndDate,
			&l.Reason,
			&l.Status,
			&l.AdminNote,
			&l.ApprovedBy,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.UserName,
			&l.UserEmail,
			&l.ApprovedByName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// Decide implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, adminNote *string, approverID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Guarded on status so concurrent decisions cannot both win.
	query := `
		UPDATE leaves
		SET status = $1, admin_note = $2, approved_by = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
		RETURNING id, user_id, start_date, end_date, reason, status, admin_note, approved_by, created_at, updated_at
	`

	var updated leave.LeaveRequest
	err := q.QueryRow(ctx, query, status, adminNote, approverID, id).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.StartDate,
		&updated.EndDate,
		&updated.Reason,
		&updated.Status,
		&updated.AdminNote,
		&updated.ApprovedBy,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}
