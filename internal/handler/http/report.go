package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ExportLeaves(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func writeExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(export.Content)))
	_, _ = w.Write(export.Content)
}

// ExportAttendance implements ReportHandler.
func (h *ReportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.AttendanceExport(r.Context())
	if err != nil {
		slog.Error("Attendance export error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance report exported", "filename", export.Filename)
	writeExport(w, export)
}

// ExportLeaves implements ReportHandler.
func (h *ReportHandlerImpl) ExportLeaves(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.LeaveExport(r.Context())
	if err != nil {
		slog.Error("Leave export error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave report exported", "filename", export.Filename)
	writeExport(w, export)
}
