package repository

import (
	"context"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CenterRepository handles database operations for centers
type CenterRepository struct {
	db *gorm.DB
}

// NewCenterRepository creates a new center repository
func NewCenterRepository(db *gorm.DB) *CenterRepository {
	return &CenterRepository{db: db}
}

// Create creates a new center. The coordinator must exist and must not
// coordinate another center.
func (r *CenterRepository) Create(ctx context.Context, center *models.Center) error {
	return translateError(r.db.WithContext(ctx).Create(center).Error, nil, apperrors.ErrUserNotFound)
}

// GetByID retrieves a center by ID
func (r *CenterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Center, error) {
	var center models.Center
	err := r.db.WithContext(ctx).First(&center, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrCenterNotFound, nil)
	}
	return &center, nil
}

// GetWithRelations retrieves a center with coordinator, departments and lecturers
func (r *CenterRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*models.Center, error) {
	var center models.Center
	err := r.db.WithContext(ctx).
		Preload("Coordinator").
		Preload("Departments", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("Lecturers", func(db *gorm.DB) *gorm.DB { return db.Order("email") }).
		First(&center, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrCenterNotFound, nil)
	}
	return &center, nil
}

// GetByCoordinatorID retrieves the center a user coordinates
func (r *CenterRepository) GetByCoordinatorID(ctx context.Context, userID uuid.UUID) (*models.Center, error) {
	var center models.Center
	err := r.db.WithContext(ctx).First(&center, "coordinator_id = ?", userID).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrCenterNotFound, nil)
	}
	return &center, nil
}

// GetAll retrieves centers with pagination, ordered by name
func (r *CenterRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Center, int64, error) {
	var centers []models.Center
	var total int64

	// Get total count
	if err := r.db.WithContext(ctx).Model(&models.Center{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.WithContext(ctx).Preload("Coordinator").Order("name").Limit(limit).Offset(offset).Find(&centers).Error
	if err != nil {
		return nil, 0, err
	}

	return centers, total, nil
}

// Rename changes the name of a center
func (r *CenterRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Center{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return translateError(result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCenterNotFound
	}
	return nil
}

// ReassignCoordinator repoints the center at newCoordinatorID in one UPDATE
// while holding the center row lock. The previous coordinator is left without
// a center. The unique index on coordinator_id settles concurrent races.
func (r *CenterRepository) ReassignCoordinator(ctx context.Context, centerID, newCoordinatorID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var center models.Center
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&center, "id = ?", centerID).Error; err != nil {
			return translateError(err, apperrors.ErrCenterNotFound, nil)
		}
		if center.CoordinatorID == newCoordinatorID {
			return nil
		}

		var elsewhere int64
		if err := tx.Model(&models.Center{}).
			Where("coordinator_id = ? AND id <> ?", newCoordinatorID, centerID).
			Count(&elsewhere).Error; err != nil {
			return err
		}
		if elsewhere > 0 {
			return apperrors.ErrCoordinatorAlreadyAssigned
		}

		return tx.Model(&models.Center{}).
			Where("id = ?", centerID).
			Update("coordinator_id", newCoordinatorID).Error
	})
	return translateError(err, nil, apperrors.ErrUserNotFound)
}

// Delete removes a center. It refuses while the center has any claims;
// otherwise lecturers are released and departments are removed, all in one
// transaction.
func (r *CenterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var center models.Center
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&center, "id = ?", id).Error; err != nil {
			return translateError(err, apperrors.ErrCenterNotFound, nil)
		}

		// claims of any status keep the center, so review records survive
		var claims int64
		if err := tx.Model(&models.Claim{}).Where("center_id = ?", id).Count(&claims).Error; err != nil {
			return err
		}
		if claims > 0 {
			return apperrors.ErrCenterHasClaims
		}

		if err := tx.Model(&models.User{}).
			Where("lecturer_center_id = ? OR department_id IN (?)", id,
				tx.Model(&models.Department{}).Select("id").Where("center_id = ?", id)).
			Updates(map[string]interface{}{"lecturer_center_id": nil, "department_id": nil}).Error; err != nil {
			return err
		}
		if err := tx.Where("center_id = ?", id).Delete(&models.Department{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Center{}, "id = ?", id).Error
	})
}
