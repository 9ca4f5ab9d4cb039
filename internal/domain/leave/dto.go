package leave

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed range. Only valid after Validate has passed.
func (r *CreateLeaveRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type DecisionRequest struct {
	LeaveID   string  `json:"leave_id"`
	Status    string  `json:"status"` // approved | rejected
	AdminNote *string `json:"admin_note"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_id",
			Message: "leave_id is required",
		})
	} else if !validator.IsValidUUID(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_id",
			Message: "leave_id must be a valid UUID",
		})
	}

	if !ValidDecision(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either approved or rejected",
		})
	}

	if r.AdminNote != nil && len(*r.AdminNote) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_note",
			Message: "admin_note must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Reason         string    `json:"reason"`
	Status         Status    `json:"status"`
	AdminNote      *string   `json:"admin_note"`
	ApprovedBy     *string   `json:"approved_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	UserName       *string   `json:"user_name,omitempty"`
	UserEmail      *string   `json:"user_email,omitempty"`
	ApprovedByName *string   `json:"approved_by_name,omitempty"`
}

func (l LeaveRequest) ToResponse() LeaveResponse {
	return LeaveResponse{
		ID:             l.ID,
		UserID:         l.UserID,
		StartDate:      l.StartDate.Format("2006-01-02"),
		EndDate:        l.EndDate.Format("2006-01-02"),
		Reason:         l.Reason,
		Status:         l.Status,
		AdminNote:      l.AdminNote,
		ApprovedBy:     l.ApprovedBy,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
		UserName:       l.UserName,
		UserEmail:      l.UserEmail,
		ApprovedByName: l.ApprovedByName,
	}
}
