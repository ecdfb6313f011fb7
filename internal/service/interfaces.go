package service

import (
	"context"

	"claims-portal-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EventPublisher publishes claim lifecycle events
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// SubmissionLimiter throttles repeated actions of one user
type SubmissionLimiter interface {
	Allow(ctx context.Context, userID uuid.UUID, action string) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID, action string) error
}

// ClaimServiceInterface defines the interface for claim service
type ClaimServiceInterface interface {
	CreateClaim(ctx context.Context, actor *auth.Actor, payload map[string]any) (*ClaimResponse, error)
	ApproveClaim(ctx context.Context, actor *auth.Actor, claimID, centerID uuid.UUID) (*ClaimResponse, error)
	RejectClaim(ctx context.Context, actor *auth.Actor, claimID, centerID uuid.UUID) (*ClaimResponse, error)
	GetClaim(ctx context.Context, actor *auth.Actor, claimID uuid.UUID) (*ClaimResponse, error)
	ListClaims(ctx context.Context, actor *auth.Actor, req *ListClaimsRequest) (*ClaimListResponse, error)
}

// CenterServiceInterface defines the interface for center service
type CenterServiceInterface interface {
	CreateCenter(ctx context.Context, actor *auth.Actor, req *CreateCenterRequest) (*CenterResponse, error)
	GetCenter(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*CenterDetailResponse, error)
	ListCenters(ctx context.Context, actor *auth.Actor, limit, offset int) ([]CenterResponse, int64, error)
	UpdateCenterName(ctx context.Context, actor *auth.Actor, id uuid.UUID, req *UpdateCenterNameRequest) (*CenterResponse, error)
	DeleteCenter(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	CreateDepartment(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *DepartmentRequest) (*DepartmentResponse, error)
	ListDepartments(ctx context.Context, actor *auth.Actor, centerID uuid.UUID) ([]DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, actor *auth.Actor, centerID, departmentID uuid.UUID, req *DepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, actor *auth.Actor, centerID, departmentID uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for the assignment manager
type AssignmentServiceInterface interface {
	AssignLecturerToDepartment(ctx context.Context, actor *auth.Actor, centerID, departmentID, lecturerID uuid.UUID) error
	UnassignLecturerFromDepartment(ctx context.Context, actor *auth.Actor, centerID, lecturerID uuid.UUID) error
	AddLecturerToCenter(ctx context.Context, actor *auth.Actor, centerID, lecturerID uuid.UUID) error
	RemoveLecturerFromCenter(ctx context.Context, actor *auth.Actor, centerID, lecturerID uuid.UUID) error
	ChangeCenterCoordinator(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *ChangeCoordinatorRequest) (*CenterResponse, error)
	BulkAssignLecturers(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *BulkAssignRequest) (*BatchResult, error)
	BulkUnassignLecturers(ctx context.Context, actor *auth.Actor, centerID uuid.UUID, req *BulkUnassignRequest) (*BatchResult, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(ctx context.Context, actor *auth.Actor, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*UserResponse, error)
	ListUsers(ctx context.Context, actor *auth.Actor, req *ListUsersRequest) ([]UserResponse, int64, error)
	GetProfile(ctx context.Context, actor *auth.Actor) (*ProfileResponse, error)
	DeleteUser(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
}
