package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct{}

func (s *stubReportService) AttendanceExport(ctx context.Context) (report.Export, error) {
	return report.Export{Filename: "attendance_report_20250610_090000.xlsx", Content: []byte("workbook")}, nil
}

func (s *stubReportService) LeaveExport(ctx context.Context) (report.Export, error) {
	return report.Export{Filename: "leave_report_20250610_090000.xlsx", Content: []byte("workbook")}, nil
}

func TestExportAttendanceHeaders(t *testing.T) {
	handler := NewReportHandler(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/attendance", nil)
	rec := httptest.NewRecorder()
	handler.ExportAttendance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="attendance_report_20250610_090000.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "workbook", rec.Body.String())
}

func TestExportLeavesHeaders(t *testing.T) {
	handler := NewReportHandler(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/leaves", nil)
	rec := httptest.NewRecorder()
	handler.ExportLeaves(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "leave_report_")
}
