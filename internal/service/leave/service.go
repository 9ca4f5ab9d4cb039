package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(repo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRepository: repo}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	start, end := req.Dates()

	request := leave.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}

	created, err := s.LeaveRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created.ToResponse(), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, adminID string, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	existing, err := s.LeaveRepository.GetByID(ctx, req.LeaveID)
	if err != nil {
		if err == leave.ErrLeaveRequestNotFound {
			return leave.LeaveResponse{}, err
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if !existing.IsPending() {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	decided, err := s.LeaveRepository.Decide(ctx, req.LeaveID, leave.Status(req.Status), req.AdminNote, adminID)
	if err != nil {
		// A concurrent decision may have taken the row between the read
		// and the guarded update.
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to decide leave request: %w", err)
	}

	return decided.ToResponse(), nil
}
