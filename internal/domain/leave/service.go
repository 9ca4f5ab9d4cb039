package leave

import (
	"context"
)

type LeaveService interface {
	// Create submits a new pending request for the user.
	Create(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)

	// ListMine returns the caller's own requests, newest first.
	ListMine(ctx context.Context, userID string) ([]LeaveResponse, error)

	// ListAll returns every request for admin review, pending first.
	ListAll(ctx context.Context) ([]LeaveResponse, error)

	// Decide approves or rejects a pending request on behalf of adminID.
	// A request that was already decided stays as it is.
	Decide(ctx context.Context, adminID string, req DecisionRequest) (LeaveResponse, error)
}
