package leave

import (
	"strings"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateLeaveRequest
		wantErr bool
		field   string
	}{
		{
			name: "valid range",
			req:  CreateLeaveRequest{StartDate: "2025-06-02", EndDate: "2025-06-06", Reason: "Family event"},
		},
		{
			name: "single day",
			req:  CreateLeaveRequest{StartDate: "2025-06-02", EndDate: "2025-06-02", Reason: "Medical appointment"},
		},
		{
			name:    "missing start date",
			req:     CreateLeaveRequest{EndDate: "2025-06-06", Reason: "x"},
			wantErr: true,
			field:   "start_date",
		},
		{
			name:    "malformed date",
			req:     CreateLeaveRequest{StartDate: "06/02/2025", EndDate: "2025-06-06", Reason: "x"},
			wantErr: true,
			field:   "start_date",
		},
		{
			name:    "end before start",
			req:     CreateLeaveRequest{StartDate: "2025-06-06", EndDate: "2025-06-02", Reason: "x"},
			wantErr: true,
			field:   "end_date",
		},
		{
			name:    "missing reason",
			req:     CreateLeaveRequest{StartDate: "2025-06-02", EndDate: "2025-06-06"},
			wantErr: true,
			field:   "reason",
		},
		{
			name:    "reason too long",
			req:     CreateLeaveRequest{StartDate: "2025-06-02", EndDate: "2025-06-06", Reason: strings.Repeat("a", 1001)},
			wantErr: true,
			field:   "reason",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestDecisionRequestValidate(t *testing.T) {
	valid := DecisionRequest{LeaveID: "0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01", Status: "approved"}
	assert.NoError(t, valid.Validate())

	rejected := DecisionRequest{LeaveID: "0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01", Status: "rejected"}
	assert.NoError(t, rejected.Validate())

	badStatus := DecisionRequest{LeaveID: "0c9c9be5-6d28-4c85-9a8a-2f4c16f9aa01", Status: "pending"}
	assert.Error(t, badStatus.Validate())

	badID := DecisionRequest{LeaveID: "nope", Status: "approved"}
	assert.Error(t, badID.Validate())
}

func TestLeaveRequestDays(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	sameDay := LeaveRequest{StartDate: start, EndDate: start}
	assert.Equal(t, 1, sameDay.Days())

	week := LeaveRequest{StartDate: start, EndDate: start.AddDate(0, 0, 4)}
	assert.Equal(t, 5, week.Days())
}

func TestLeaveResponseDateFormat(t *testing.T) {
	req := LeaveRequest{
		StartDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		Status:    StatusPending,
	}

	resp := req.ToResponse()
	assert.Equal(t, "2025-06-02", resp.StartDate)
	assert.Equal(t, "2025-06-06", resp.EndDate)
}
