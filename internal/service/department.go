package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/logger"
	"claims-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo       repository.DepartmentRepositoryInterface
	centerRepo repository.CenterRepositoryInterface
	validator  *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, centerRepo repository.CenterRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:       repo,
		centerRepo: centerRepo,
		validator:  validator,
	}
}

// DepartmentRequest carries a department name for create and rename
type DepartmentRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Mathematics"`
}

// DepartmentResponse represents the response data for a department
type DepartmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CenterID  uuid.UUID `json:"centerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateDepartment creates a department in centerID
func (s *DepartmentService) CreateDepartment(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *DepartmentRequest) (*DepartmentResponse, error) {
	if err := authorize(ctx, auth.OpCreateDepartment, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	department := &models.Department{Name: req.Name, CenterID: centerID}
	if err := s.repo.Create(ctx, department); err != nil {
		if apperrors.IsConflict(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	logger.WithContext(ctx).WithOperation(string(auth.OpCreateDepartment)).WithFields(map[string]interface{}{
		"center_id":     centerID,
		"department_id": department.ID,
	}).Info("department created")
	return toDepartmentResponse(department), nil
}

// ListDepartments returns the departments of centerID ordered by name
func (s *DepartmentService) ListDepartments(ctx context.Context, actor *auth.Actor, centerID uuid.UUID) ([]DepartmentResponse, error) {
	if err := authorize(ctx, auth.OpViewCenter, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}

	if _, err := s.centerRepo.GetByID(ctx, centerID); err != nil {
		return nil, err
	}

	departments, err := s.repo.GetByCenterID(ctx, centerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	out := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		out = append(out, *toDepartmentResponse(&departments[i]))
	}
	return out, nil
}

// UpdateDepartment renames a department of centerID
func (s *DepartmentService) UpdateDepartment(ctx context.Context, actor *auth.Actor, centerID, departmentID uuid.UUID, req *DepartmentRequest) (*DepartmentResponse, error) {
	if err := authorize(ctx, auth.OpRenameDepartment, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.repo.Rename(ctx, departmentID, centerID, req.Name); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to rename department: %w", err)
	}

	department, err := s.repo.GetByIDInCenter(ctx, departmentID, centerID)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// DeleteDepartment removes a department of centerID; its lecturers stay in
// the center without a department
func (s *DepartmentService) DeleteDepartment(ctx context.Context, actor *auth.Actor, centerID, departmentID uuid.UUID) error {
	if err := authorize(ctx, auth.OpDeleteDepartment, actor, auth.Target{CenterID: centerID}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, departmentID, centerID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}

	logger.WithContext(ctx).WithOperation(string(auth.OpDeleteDepartment)).WithField("department_id", departmentID).Info("department deleted")
	return nil
}

func toDepartmentResponse(d *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CenterID:  d.CenterID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
