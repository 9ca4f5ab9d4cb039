package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

type Attendance struct {
	ID           string
	UserID       string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       Status
	Notes        *string
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time

	// Joined from users for admin views
	UserName  *string
	UserEmail *string
}

// IsOpen reports whether the session has not been checked out yet.
func (a *Attendance) IsOpen() bool {
	return a.CheckOutTime == nil
}

// Duration returns the session length, zero while the session is open.
func (a *Attendance) Duration() time.Duration {
	if a.CheckOutTime == nil {
		return 0
	}
	return a.CheckOutTime.Sub(a.CheckInTime)
}
