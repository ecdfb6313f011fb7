package repository

import (
	"context"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	return translateError(r.db.WithContext(ctx).Create(department).Error, nil, apperrors.ErrCenterNotFound)
}

// GetByIDInCenter retrieves a department only if it belongs to centerID
func (r *DepartmentRepository) GetByIDInCenter(ctx context.Context, id, centerID uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.WithContext(ctx).First(&department, "id = ? AND center_id = ?", id, centerID).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrDepartmentNotFound, nil)
	}
	return &department, nil
}

// GetByCenterID retrieves all departments of a center ordered by name
func (r *DepartmentRepository) GetByCenterID(ctx context.Context, centerID uuid.UUID) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.WithContext(ctx).Where("center_id = ?", centerID).Order("name").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// Rename changes the name of a department of centerID
func (r *DepartmentRepository) Rename(ctx context.Context, id, centerID uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Department{}).
		Where("id = ? AND center_id = ?", id, centerID).
		Update("name", name)
	if result.Error != nil {
		return translateError(result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Delete removes a department of centerID after unassigning its lecturers
func (r *DepartmentRepository) Delete(ctx context.Context, id, centerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("department_id = ? AND EXISTS (SELECT 1 FROM departments WHERE id = ? AND center_id = ?)", id, id, centerID).
			Update("department_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Department{}, "id = ? AND center_id = ?", id, centerID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrDepartmentNotFound
		}
		return nil
	})
}
