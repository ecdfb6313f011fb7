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

// UserService handles business logic for the user directory
type UserService struct {
	repo       repository.UserRepositoryInterface
	centerRepo repository.CenterRepositoryInterface
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, centerRepo repository.CenterRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:       repo,
		centerRepo: centerRepo,
		validator:  validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255" example:"jane.doe@example.com"`
	Name     *string `json:"name" validate:"omitempty,max=200" example:"Jane Doe"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role" validate:"required,oneof=REGISTRY COORDINATOR LECTURER" example:"LECTURER"`
}

// ListUsersRequest holds the user list filters
type ListUsersRequest struct {
	Role         string     `json:"role" validate:"omitempty,oneof=REGISTRY COORDINATOR LECTURER"`
	CenterID     *uuid.UUID `json:"centerId"`
	Unaffiliated bool       `json:"unaffiliated"`
	Limit        int        `json:"limit"`
	Offset       int        `json:"offset"`
}

// UserSummary is the short form of a user embedded in other responses
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  *string   `json:"name,omitempty"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID               uuid.UUID   `json:"id"`
	Email            string      `json:"email"`
	Name             *string     `json:"name,omitempty"`
	Role             models.Role `json:"role"`
	LecturerCenterID *uuid.UUID  `json:"lecturerCenterId,omitempty"`
	DepartmentID     *uuid.UUID  `json:"departmentId,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// ProfileResponse is the caller's own user record plus the center they coordinate
type ProfileResponse struct {
	UserResponse
	CoordinatedCenterID *uuid.UUID `json:"coordinatedCenterId,omitempty"`
}

// CreateUser creates a user with a hashed password
func (s *UserService) CreateUser(ctx context.Context, actor *auth.Actor, req *CreateUserRequest) (*UserResponse, error) {
	if err := authorize(ctx, auth.OpManageUsers, actor, auth.Target{}); err != nil {
		return nil, err
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         models.Role(req.Role),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithOperation(string(auth.OpManageUsers)).WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user created")
	return toUserResponse(user), nil
}

// GetUser returns a user visible to actor. Callers without registry rights
// get "not permitted" for both missing and foreign users.
func (s *UserService) GetUser(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*UserResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrNotPermitted
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) && !actor.IsRegistry() {
			return nil, apperrors.ErrNotPermitted
		}
		return nil, err
	}

	target := auth.Target{UserID: user.ID}
	if user.LecturerCenterID != nil {
		target.CenterID = *user.LecturerCenterID
	}
	if err := authorize(ctx, auth.OpViewDirectory, actor, target); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lists the directory. Registry actors see everyone; coordinators
// see lecturers of their center, or unaffiliated lecturers they may add.
func (s *UserService) ListUsers(ctx context.Context, actor *auth.Actor, req *ListUsersRequest) ([]UserResponse, int64, error) {
	if actor == nil {
		return nil, 0, apperrors.ErrNotPermitted
	}
	if req == nil {
		req = &ListUsersRequest{}
	}

	filter := repository.UserFilter{
		Role:             models.Role(req.Role),
		LecturerCenterID: req.CenterID,
		Unaffiliated:     req.Unaffiliated,
	}
	var target auth.Target
	if !actor.IsRegistry() {
		if actor.CoordinatedCenterID != nil {
			target.CenterID = *actor.CoordinatedCenterID
		}
		if req.CenterID != nil {
			target.CenterID = *req.CenterID
		}
		filter.Role = models.RoleLecturer
		filter.LecturerCenterID = &target.CenterID
		if req.Unaffiliated {
			filter.LecturerCenterID = nil
		}
	}

	if err := authorize(ctx, auth.OpViewDirectory, actor, target); err != nil {
		return nil, 0, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, 0, err
	}

	limit, offset := clampLimit(req.Limit, req.Offset)
	users, total, err := s.repo.GetAll(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, total, nil
}

// GetProfile returns the caller's own record
func (s *UserService) GetProfile(ctx context.Context, actor *auth.Actor) (*ProfileResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrMissingActor
	}

	user, err := s.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{
		UserResponse:        *toUserResponse(user),
		CoordinatedCenterID: actor.CoordinatedCenterID,
	}, nil
}

// DeleteUser deletes a user no longer referenced by a center or claims
func (s *UserService) DeleteUser(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	if err := authorize(ctx, auth.OpManageUsers, actor, auth.Target{UserID: id}); err != nil {
		return err
	}
	if actor.ID == id {
		return apperrors.NewValidationError("id", "cannot delete yourself")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConflict(err) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.WithContext(ctx).WithOperation(string(auth.OpManageUsers)).WithField("user_id", id).Info("user deleted")
	return nil
}

// LoadActor builds the Actor for userID from storage, including the center
// a coordinator currently holds
func (s *UserService) LoadActor(ctx context.Context, userID uuid.UUID) (*auth.Actor, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	actor := &auth.Actor{
		ID:               user.ID,
		Email:            user.Email,
		Role:             user.Role,
		LecturerCenterID: user.LecturerCenterID,
		DepartmentID:     user.DepartmentID,
	}
	if user.Role == models.RoleCoordinator {
		center, err := s.centerRepo.GetByCoordinatorID(ctx, user.ID)
		switch {
		case err == nil:
			actor.CoordinatedCenterID = &center.ID
		case !apperrors.IsNotFound(err):
			return nil, fmt.Errorf("failed to load coordinated center: %w", err)
		}
	}
	return actor, nil
}

func toUserSummary(u *models.User) *UserSummary {
	return &UserSummary{ID: u.ID, Email: u.Email, Name: u.Name}
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             u.Role,
		LecturerCenterID: u.LecturerCenterID,
		DepartmentID:     u.DepartmentID,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
