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

// CenterService handles business logic for centers
type CenterService struct {
	repo      repository.CenterRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewCenterService creates a new center service
func NewCenterService(repo repository.CenterRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *CenterService {
	return &CenterService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateCenterRequest represents the data needed to create a center
type CreateCenterRequest struct {
	Name          string    `json:"name" validate:"required,max=100" example:"Nairobi Campus"`
	CoordinatorID uuid.UUID `json:"coordinatorId" validate:"required"`
}

// UpdateCenterNameRequest represents a center rename
type UpdateCenterNameRequest struct {
	NewName string `json:"newName" validate:"required,max=100" example:"Mombasa Campus"`
}

// CenterResponse represents the response data for a center
type CenterResponse struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	CoordinatorID uuid.UUID    `json:"coordinatorId"`
	Coordinator   *UserSummary `json:"coordinator,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// CenterDetailResponse is a center with its departments and lecturers
type CenterDetailResponse struct {
	CenterResponse
	Departments []DepartmentResponse `json:"departments"`
	Lecturers   []UserResponse       `json:"lecturers"`
}

// CreateCenter creates a center coordinated by an existing coordinator that
// holds no other center
func (s *CenterService) CreateCenter(ctx context.Context, actor *auth.Actor, req *CreateCenterRequest) (*CenterResponse, error) {
	if err := authorize(ctx, auth.OpCreateCenter, actor, auth.Target{}); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	coordinator, err := s.requireCoordinator(ctx, req.CoordinatorID, "coordinatorId")
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByCoordinatorID(ctx, coordinator.ID); err == nil {
		return nil, apperrors.ErrCoordinatorAlreadyAssigned
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check coordinator: %w", err)
	}

	center := &models.Center{Name: req.Name, CoordinatorID: coordinator.ID}
	if err := s.repo.Create(ctx, center); err != nil {
		if apperrors.IsConflict(err) || apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create center: %w", err)
	}
	center.Coordinator = coordinator

	logger.WithContext(ctx).WithOperation(string(auth.OpCreateCenter)).WithField("center_id", center.ID).Info("center created")
	return toCenterResponse(center), nil
}

// GetCenter returns a center with its departments and lecturers
func (s *CenterService) GetCenter(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*CenterDetailResponse, error) {
	if err := authorize(ctx, auth.OpViewCenter, actor, auth.Target{CenterID: id}); err != nil {
		return nil, err
	}

	center, err := s.repo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &CenterDetailResponse{
		CenterResponse: *toCenterResponse(center),
		Departments:    make([]DepartmentResponse, 0, len(center.Departments)),
		Lecturers:      make([]UserResponse, 0, len(center.Lecturers)),
	}
	for i := range center.Departments {
		resp.Departments = append(resp.Departments, *toDepartmentResponse(&center.Departments[i]))
	}
	for i := range center.Lecturers {
		resp.Lecturers = append(resp.Lecturers, *toUserResponse(&center.Lecturers[i]))
	}
	return resp, nil
}

// ListCenters returns every center for registry actors and the coordinated
// center for coordinators
func (s *CenterService) ListCenters(ctx context.Context, actor *auth.Actor, limit, offset int) ([]CenterResponse, int64, error) {
	if actor.IsRegistry() {
		limit, offset = clampLimit(limit, offset)
		centers, total, err := s.repo.GetAll(ctx, limit, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list centers: %w", err)
		}
		out := make([]CenterResponse, 0, len(centers))
		for i := range centers {
			out = append(out, *toCenterResponse(&centers[i]))
		}
		return out, total, nil
	}

	var centerID uuid.UUID
	if actor != nil && actor.CoordinatedCenterID != nil {
		centerID = *actor.CoordinatedCenterID
	}
	if err := authorize(ctx, auth.OpViewCenter, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, 0, err
	}

	center, err := s.repo.GetWithRelations(ctx, centerID)
	if err != nil {
		return nil, 0, err
	}
	return []CenterResponse{*toCenterResponse(center)}, 1, nil
}

// UpdateCenterName renames a center
func (s *CenterService) UpdateCenterName(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateCenterNameRequest) (*CenterResponse, error) {
	if err := authorize(ctx, auth.OpRenameCenter, actor, auth.Target{CenterID: id}); err != nil {
		return nil, err
	}

	req.NewName = strings.TrimSpace(req.NewName)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.repo.Rename(ctx, id, req.NewName); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to rename center: %w", err)
	}

	center, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCenterResponse(center), nil
}

// DeleteCenter removes a center that has no claims
func (s *CenterService) DeleteCenter(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := authorize(ctx, auth.OpDeleteCenter, actor, auth.Target{CenterID: id}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConflict(err) {
			return err
		}
		return fmt.Errorf("failed to delete center: %w", err)
	}

	logger.WithContext(ctx).WithOperation(string(auth.OpDeleteCenter)).WithField("center_id", id).Info("center deleted")
	return nil
}

// requireCoordinator loads userID and checks it has the COORDINATOR role.
// A wrong role is reported against field.
func (s *CenterService) requireCoordinator(ctx context.Context, userID uuid.UUID, field string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleCoordinator {
		return nil, apperrors.NewValidationError(field, "must be a user with the COORDINATOR role")
	}
	return user, nil
}

func toCenterResponse(c *models.Center) *CenterResponse {
	resp := &CenterResponse{
		ID:            c.ID,
		Name:          c.Name,
		CoordinatorID: c.CoordinatorID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.Coordinator != nil {
		resp.Coordinator = toUserSummary(c.Coordinator)
	}
	return resp
}
