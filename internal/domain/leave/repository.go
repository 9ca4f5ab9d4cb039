package leave

import (
	"context"
)

type LeaveRepository interface {
	// Create inserts a new pending request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a single request
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser returns a member's own requests, newest first, with the
	// approver name joined.
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListAll returns every request for admins, pending first, then by
	// submission time descending.
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// Decide transitions a pending request to approved or rejected,
	// recording the approver and optional note. Only pending rows are
	// touched; the caller maps an untouched row to
	// ErrLeaveAlreadyProcessed or ErrLeaveRequestNotFound.
	Decide(ctx context.Context, id string, status Status, adminNote *string, approverID string) (LeaveRequest, error)
}
