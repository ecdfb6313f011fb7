package repository

import (
	"context"
	"time"

	"claims-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetLecturerInCenter(ctx context.Context, lecturerID, centerID uuid.UUID) (*models.User, error)
	GetAll(ctx context.Context, filter UserFilter, limit, offset int) ([]models.User, int64, error)
	AddToCenter(ctx context.Context, lecturerID, centerID uuid.UUID) error
	RemoveFromCenter(ctx context.Context, lecturerID, centerID uuid.UUID) error
	SetDepartment(ctx context.Context, lecturerID, centerID uuid.UUID, departmentID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CenterRepositoryInterface defines the interface for center repository operations
type CenterRepositoryInterface interface {
	Create(ctx context.Context, center *models.Center) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Center, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*models.Center, error)
	GetByCoordinatorID(ctx context.Context, userID uuid.UUID) (*models.Center, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Center, int64, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	ReassignCoordinator(ctx context.Context, centerID, newCoordinatorID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(ctx context.Context, department *models.Department) error
	GetByIDInCenter(ctx context.Context, id, centerID uuid.UUID) (*models.Department, error)
	GetByCenterID(ctx context.Context, centerID uuid.UUID) ([]models.Department, error)
	Rename(ctx context.Context, id, centerID uuid.UUID, name string) error
	Delete(ctx context.Context, id, centerID uuid.UUID) error
}

// ClaimRepositoryInterface defines the interface for claim repository operations
type ClaimRepositoryInterface interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error)
	GetByIDInCenter(ctx context.Context, id, centerID uuid.UUID) (*models.Claim, error)
	List(ctx context.Context, filter ClaimFilter, limit, offset int) ([]models.Claim, int64, error)
	TransitionStatus(ctx context.Context, id, centerID uuid.UUID, status models.ClaimStatus, processedBy uuid.UUID, at time.Time) (*models.Claim, error)
}
