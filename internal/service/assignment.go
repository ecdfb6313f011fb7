package service

import (
	"context"
	"fmt"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/logger"
	"claims-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AssignmentService manages which lecturers belong to which center and
// department, and who coordinates a center
type AssignmentService struct {
	userRepo     repository.UserRepositoryInterface
	centerRepo   repository.CenterRepositoryInterface
	validator    *validator.Validate
	bulkMaxItems int
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(userRepo repository.UserRepositoryInterface, centerRepo repository.CenterRepositoryInterface, validator *validator.Validate, bulkMaxItems int) *AssignmentService {
	return &AssignmentService{
		userRepo:     userRepo,
		centerRepo:   centerRepo,
		validator:    validator,
		bulkMaxItems: bulkMaxItems,
	}
}

// AssignDepartmentRequest names the department a lecturer moves to
type AssignDepartmentRequest struct {
	DepartmentID uuid.UUID `json:"departmentId" validate:"required"`
}

// ChangeCoordinatorRequest names the new coordinator of a center
type ChangeCoordinatorRequest struct {
	NewCoordinatorID uuid.UUID `json:"newCoordinatorId" validate:"required"`
}

// BulkAssignItem is one lecturer to department assignment
type BulkAssignItem struct {
	LecturerID   uuid.UUID `json:"lecturerId" validate:"required"`
	DepartmentID uuid.UUID `json:"departmentId" validate:"required"`
}

// BulkAssignRequest is a batch of assignments within one center
type BulkAssignRequest struct {
	Items []BulkAssignItem `json:"items" validate:"required,min=1,dive"`
}

// BulkUnassignRequest is a batch of lecturers to clear the department of
type BulkUnassignRequest struct {
	LecturerIDs []uuid.UUID `json:"lecturerIds" validate:"required,min=1"`
}

// BatchFailure is the outcome of one failed batch item
type BatchFailure struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// BatchResult lists per-item outcomes of a batch. Items are independent; a
// failed item does not undo the others.
type BatchResult struct {
	Succeeded []uuid.UUID    `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// AssignLecturerToDepartment points a lecturer of centerID at departmentID,
// replacing any previous department
func (s *AssignmentService) AssignLecturerToDepartment(ctx context.Context, actor *auth.Actor, centerID, departmentID, lecturerID uuid.UUID) error {
	if err := authorize(ctx, auth.OpAssignLecturer, actor, auth.Target{CenterID: centerID}); err != nil {
		return err
	}
	return s.setDepartment(ctx, centerID, lecturerID, &departmentID)
}

// UnassignLecturerFromDepartment clears the department of a lecturer of
// centerID. A lecturer without a department is left as is.
func (s *AssignmentService) UnassignLecturerFromDepartment(ctx context.Context, actor *auth.Actor, centerID, lecturerID uuid.UUID) error {
	if err := authorize(ctx, auth.OpUnassignLecturer, actor, auth.Target{CenterID: centerID}); err != nil {
		return err
	}
	return s.setDepartment(ctx, centerID, lecturerID, nil)
}

func (s *AssignmentService) setDepartment(ctx context.Context, centerID, lecturerID uuid.UUID, departmentID *uuid.UUID) error {
	if err := s.userRepo.SetDepartment(ctx, lecturerID, centerID, departmentID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to set department: %w", err)
	}
	return nil
}

// AddLecturerToCenter makes an unaffiliated lecturer a lecturer of centerID
func (s *AssignmentService) AddLecturerToCenter(ctx context.Context, actor *auth.Actor, centerID, lecturerID uuid.UUID) error {
	if err := authorize(ctx, auth.OpManageCenterLecturers, actor, auth.Target{CenterID: centerID}); err != nil {
		return err
	}

	if err := s.userRepo.AddToCenter(ctx, lecturerID, centerID); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConflict(err) || apperrors.IsValidation(err) {
			return err
		}
		return fmt.Errorf("failed to add lecturer: %w", err)
	}

	logger.WithContext(ctx).WithOperation(string(auth.OpManageCenterLecturers)).WithFields(map[string]interface{}{
		"center_id":   centerID,
		"lecturer_id": lecturerID,
	}).Info("lecturer added to center")
	return nil
}

// RemoveLecturerFromCenter detaches a lecturer from centerID and its department
func (s *AssignmentService) RemoveLecturerFromCenter(ctx context.Context, actor *auth.Actor, centerID, lecturerID uuid.UUID) error {
	if err := authorize(ctx, auth.OpManageCenterLecturers, actor, auth.Target{CenterID: centerID}); err != nil {
		return err
	}

	if err := s.userRepo.RemoveFromCenter(ctx, lecturerID, centerID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to remove lecturer: %w", err)
	}
	return nil
}

// ChangeCenterCoordinator repoints centerID at a coordinator that holds no
// other center. The previous coordinator is left without a center.
func (s *AssignmentService) ChangeCenterCoordinator(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *ChangeCoordinatorRequest) (*CenterResponse, error) {
	if err := authorize(ctx, auth.OpChangeCenterCoordinator, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	coordinator, err := s.userRepo.GetByID(ctx, req.NewCoordinatorID)
	if err != nil {
		return nil, err
	}
	if coordinator.Role != models.RoleCoordinator {
		return nil, apperrors.NewValidationError("newCoordinatorId", "must be a user with the COORDINATOR role")
	}

	if err := s.centerRepo.ReassignCoordinator(ctx, centerID, coordinator.ID); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to change coordinator: %w", err)
	}

	center, err := s.centerRepo.GetByID(ctx, centerID)
	if err != nil {
		return nil, err
	}
	center.Coordinator = coordinator

	logger.WithContext(ctx).WithOperation(string(auth.OpChangeCenterCoordinator)).WithFields(map[string]interface{}{
		"center_id":      centerID,
		"coordinator_id": coordinator.ID,
	}).Info("center coordinator changed")
	return toCenterResponse(center), nil
}

// BulkAssignLecturers runs AssignLecturerToDepartment for every item
func (s *AssignmentService) BulkAssignLecturers(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *BulkAssignRequest) (*BatchResult, error) {
	if err := authorize(ctx, auth.OpAssignLecturer, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkBatchSize(len(req.Items), "items"); err != nil {
		return nil, err
	}

	result := newBatchResult()
	for _, item := range req.Items {
		departmentID := item.DepartmentID
		s.record(ctx, result, item.LecturerID, s.setDepartment(ctx, centerID, item.LecturerID, &departmentID))
	}
	return result, nil
}

// BulkUnassignLecturers runs UnassignLecturerFromDepartment for every lecturer
func (s *AssignmentService) BulkUnassignLecturers(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *BulkUnassignRequest) (*BatchResult, error) {
	if err := authorize(ctx, auth.OpUnassignLecturer, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkBatchSize(len(req.LecturerIDs), "lecturerIds"); err != nil {
		return nil, err
	}

	result := newBatchResult()
	for _, lecturerID := range req.LecturerIDs {
		s.record(ctx, result, lecturerID, s.setDepartment(ctx, centerID, lecturerID, nil))
	}
	return result, nil
}

func (s *AssignmentService) checkBatchSize(n int, field string) error {
	if s.bulkMaxItems > 0 && n > s.bulkMaxItems {
		return apperrors.NewValidationError(field, fmt.Sprintf("must contain at most %d items", s.bulkMaxItems))
	}
	return nil
}

func newBatchResult() *BatchResult {
	return &BatchResult{Succeeded: []uuid.UUID{}, Failed: []BatchFailure{}}
}

// record files the outcome of one item. Unexpected errors are logged and
// reported generically.
func (s *AssignmentService) record(ctx context.Context, result *BatchResult, id uuid.UUID, err error) {
	if err == nil {
		result.Succeeded = append(result.Succeeded, id)
		return
	}
	reason := err.Error()
	if !apperrors.IsNotFound(err) && !apperrors.IsConflict(err) && !apperrors.IsValidation(err) {
		logger.WithContext(ctx).WithError(err).WithField("item_id", id).Error("batch item failed")
		reason = "an unexpected error occurred"
	}
	result.Failed = append(result.Failed, BatchFailure{ID: id, Reason: reason})
}
