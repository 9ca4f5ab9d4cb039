package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLeave(t *testing.T, ctx context.Context, repo leave.LeaveRepository, userID string, reason string) leave.LeaveRequest {
	t.Helper()
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, leave.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		Reason:    reason,
	})
	require.NoError(t, err)
	return created
}

func TestLeaveRepository_ListAll_OrdersByStatus(t *testing.T) {
	ctx := context.Background()
	db := repoTestDB(t)
	truncateRepoTables(t, ctx, db)

	userRepo := NewUserRepository(db)
	leaveRepo := NewLeaveRepository(db)

	member := createTestUser(t, ctx, userRepo, "leave-member", user.RoleMember)
	admin := createTestUser(t, ctx, userRepo, "leave-admin", user.RoleAdmin)

	// Created oldest first so creation order alone would return the
	// reverse of what we assert on.
	rejected := createTestLeave(t, ctx, leaveRepo, member.ID, "Rejected one")
	approved := createTestLeave(t, ctx, leaveRepo, member.ID, "Approved one")
	pending := createTestLeave(t, ctx, leaveRepo, member.ID, "Pending one")

	_, err := leaveRepo.Decide(ctx, rejected.ID, leave.StatusRejected, nil, admin.ID)
	require.NoError(t, err)
	_, err = leaveRepo.Decide(ctx, approved.ID, leave.StatusApproved, nil, admin.ID)
	require.NoError(t, err)

	all, err := leaveRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, pending.ID, all[0].ID)
	assert.Equal(t, leave.StatusPending, all[0].Status)
	assert.Equal(t, approved.ID, all[1].ID)
	assert.Equal(t, leave.StatusApproved, all[1].Status)
	assert.Equal(t, rejected.ID, all[2].ID)
	assert.Equal(t, leave.StatusRejected, all[2].Status)
}
