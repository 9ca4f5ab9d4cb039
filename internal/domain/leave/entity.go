package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Decidable statuses an admin may move a pending request to.
func ValidDecision(s string) bool {
	return s == string(StatusApproved) || s == string(StatusRejected)
}

type LeaveRequest struct {
	ID         string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	AdminNote  *string
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from users for responses
	UserName       *string
	UserEmail      *string
	ApprovedByName *string
}

// Days returns the inclusive length of the requested range.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// IsPending reports whether the request still awaits a decision.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}
