package report

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(repo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{ReportRepository: repo}
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
	})
}

func statusStyle(f *excelize.File, status string) (int, error) {
	color := "FFF2CC" // pending
	switch status {
	case "approved", "present":
		color = "C6EFCE"
	case "rejected", "absent":
		color = "FFC7CE"
	case "late":
		color = "FFEB9C"
	}
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
}

// AttendanceExport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceExport(ctx context.Context) (report.Export, error) {
	rows, err := s.ReportRepository.ListAttendanceRows(ctx)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to load attendance rows: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Check In", "Check Out", "Duration (h)", "Status", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	if style, err := headerStyle(f); err == nil {
		f.SetCellStyle(sheet, "A1", "G1", style)
	}
	f.SetColWidth(sheet, "A", "B", 28)
	f.SetColWidth(sheet, "C", "D", 22)
	f.SetColWidth(sheet, "G", "G", 40)

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.UserName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.UserEmail)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.CheckInTime.Format("2006-01-02 15:04:05"))
		if row.CheckOutTime != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.CheckOutTime.Format("2006-01-02 15:04:05"))
			hours := row.CheckOutTime.Sub(row.CheckInTime).Hours()
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), fmt.Sprintf("%.2f", hours))
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), row.Status)
		if style, err := statusStyle(f, row.Status); err == nil {
			cell := fmt.Sprintf("F%d", rowNum)
			f.SetCellStyle(sheet, cell, cell, style)
		}
		if row.Notes != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), *row.Notes)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return report.Export{
		Filename: fmt.Sprintf("attendance_report_%s.xlsx", time.Now().Format("20060102_150405")),
		Content:  buf.Bytes(),
	}, nil
}

// LeaveExport implements report.ReportService.
func (s *ReportServiceImpl) LeaveExport(ctx context.Context) (report.Export, error) {
	rows, err := s.ReportRepository.ListLeaveRows(ctx)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to load leave rows: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leave Requests"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Start Date", "End Date", "Days", "Reason", "Status", "Admin Note", "Decided By", "Submitted"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	if style, err := headerStyle(f); err == nil {
		f.SetCellStyle(sheet, "A1", "J1", style)
	}
	f.SetColWidth(sheet, "A", "B", 28)
	f.SetColWidth(sheet, "F", "F", 40)
	f.SetColWidth(sheet, "H", "H", 30)

	for i, row := range rows {
		rowNum := i + 2
		days := int(row.EndDate.Sub(row.StartDate).Hours()/24) + 1
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.UserName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.UserEmail)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.StartDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.EndDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), days)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), row.Reason)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), row.Status)
		if style, err := statusStyle(f, row.Status); err == nil {
			cell := fmt.Sprintf("G%d", rowNum)
			f.SetCellStyle(sheet, cell, cell, style)
		}
		if row.AdminNote != nil {
			f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), *row.AdminNote)
		}
		if row.ApprovedByName != nil {
			f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), *row.ApprovedByName)
		}
		f.SetCellValue(sheet, fmt.Sprintf("J%d", rowNum), row.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return report.Export{
		Filename: fmt.Sprintf("leave_report_%s.xlsx", time.Now().Format("20060102_150405")),
		Content:  buf.Bytes(),
	}, nil
}
