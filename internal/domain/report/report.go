package report

import (
	"context"
	"time"
)

// AttendanceRow is a flattened attendance record joined with its owner,
// ready to be written into an export sheet.
type AttendanceRow struct {
	UserName     string
	UserEmail    string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       string
	Notes        *string
}

// LeaveRow is a flattened leave request joined with its owner and approver.
type LeaveRow struct {
	UserName       string
	UserEmail      string
	StartDate      time.Time
	EndDate        time.Time
	Reason         string
	Status         string
	AdminNote      *string
	ApprovedByName *string
	CreatedAt      time.Time
}

type ReportRepository interface {
	ListAttendanceRows(ctx context.Context) ([]AttendanceRow, error)
	ListLeaveRows(ctx context.Context) ([]LeaveRow, error)
}

// Export is a rendered spreadsheet ready to stream to the client.
type Export struct {
	Filename string
	Content  []byte
}

type ReportService interface {
	// AttendanceExport renders every attendance record into a workbook.
	AttendanceExport(ctx context.Context) (Export, error)

	// LeaveExport renders every leave request into a workbook.
	LeaveExport(ctx context.Context) (Export, error)
}
