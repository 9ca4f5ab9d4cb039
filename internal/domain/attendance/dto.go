package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	// Geolocation is best effort: a denied or unavailable browser
	// geolocation still produces a valid unlocated check-in.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	ClientIP string `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	// A lone coordinate is meaningless, require both or neither
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	AttendanceID string `json:"attendance_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	} else if !validator.IsValidUUID(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       Status     `json:"status"`
	Notes        *string    `json:"notes"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	CreatedAt    time.Time  `json:"created_at"`
	UserName     *string    `json:"user_name,omitempty"`
	UserEmail    *string    `json:"user_email,omitempty"`
}

func (a Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       a.Status,
		Notes:        a.Notes,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		CreatedAt:    a.CreatedAt,
		UserName:     a.UserName,
		UserEmail:    a.UserEmail,
	}
}

// Stats summarizes a member's attendance history.
type Stats struct {
	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	LateDays    int `json:"late_days"`
	AbsentDays  int `json:"absent_days"`
}

// ComputeStats tallies records by status.
func ComputeStats(records []Attendance) Stats {
	stats := Stats{TotalDays: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			stats.PresentDays++
		case StatusLate:
			stats.LateDays++
		case StatusAbsent:
			stats.AbsentDays++
		}
	}
	return stats
}

type MemberAttendanceResponse struct {
	UserID     string               `json:"user_id"`
	Attendance []AttendanceResponse `json:"attendance"`
	Stats      Stats                `json:"stats"`
}
