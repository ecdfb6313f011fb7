package repository

import (
	"context"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter narrows GetAll. Zero values are ignored.
type UserFilter struct {
	Role             models.Role
	LecturerCenterID *uuid.UUID
	Unaffiliated     bool // lecturers without a center
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error, nil, nil)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// GetLecturerInCenter retrieves a lecturer only if it belongs to centerID
func (r *UserRepository) GetLecturerInCenter(ctx context.Context, lecturerID, centerID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		First(&user, "id = ? AND role = ? AND lecturer_center_id = ?", lecturerID, models.RoleLecturer, centerID).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrLecturerNotFound, nil)
	}
	return &user, nil
}

// GetAll retrieves users with pagination, ordered by email
func (r *UserRepository) GetAll(ctx context.Context, filter UserFilter, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.LecturerCenterID != nil {
		query = query.Where("lecturer_center_id = ?", *filter.LecturerCenterID)
	}
	if filter.Unaffiliated {
		query = query.Where("role = ? AND lecturer_center_id IS NULL", models.RoleLecturer)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("email").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// AddToCenter makes lecturerID a lecturer of centerID. A lecturer already in
// the center is left as is.
func (r *UserRepository) AddToCenter(ctx context.Context, lecturerID, centerID uuid.UUID) error {
	db := r.db.WithContext(ctx)
	result := db.Model(&models.User{}).
		Where("id = ? AND role = ? AND (lecturer_center_id IS NULL OR lecturer_center_id = ?)", lecturerID, models.RoleLecturer, centerID).
		Update("lecturer_center_id", centerID)
	if result.Error != nil {
		return translateError(result.Error, nil, apperrors.ErrCenterNotFound)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: tell the caller why
	var user models.User
	if err := db.First(&user, "id = ?", lecturerID).Error; err != nil {
		return translateError(err, apperrors.ErrLecturerNotFound, nil)
	}
	if user.Role != models.RoleLecturer {
		return apperrors.NewValidationError("lecturerId", "user does not have the LECTURER role")
	}
	return apperrors.ErrLecturerInAnotherCenter
}

// RemoveFromCenter clears the center and department of a lecturer of centerID
func (r *UserRepository) RemoveFromCenter(ctx context.Context, lecturerID, centerID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND role = ? AND lecturer_center_id = ?", lecturerID, models.RoleLecturer, centerID).
		Updates(map[string]interface{}{"lecturer_center_id": nil, "department_id": nil})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrLecturerNotFound
	}
	return nil
}

// SetDepartment points a lecturer of centerID at departmentID, or clears the
// pointer when departmentID is nil. The department must belong to centerID.
func (r *UserRepository) SetDepartment(ctx context.Context, lecturerID, centerID uuid.UUID, departmentID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if departmentID != nil {
			var count int64
			if err := tx.Model(&models.Department{}).
				Where("id = ? AND center_id = ?", *departmentID, centerID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperrors.ErrDepartmentNotFound
			}
		}

		result := tx.Model(&models.User{}).
			Where("id = ? AND role = ? AND lecturer_center_id = ?", lecturerID, models.RoleLecturer, centerID).
			Update("department_id", departmentID)
		if result.Error != nil {
			return translateError(result.Error, nil, apperrors.ErrDepartmentNotFound)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrLecturerNotFound
		}
		return nil
	})
}

// Delete deletes a user. Users still coordinating a center or referenced by
// claims cannot be deleted.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, nil, apperrors.ErrUserInUse)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
