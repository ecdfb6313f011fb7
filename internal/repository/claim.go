package repository

import (
	"context"
	"time"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClaimFilter narrows List. Nil fields are ignored.
type ClaimFilter struct {
	CenterID      *uuid.UUID
	SubmittedByID *uuid.UUID
	Status        *models.ClaimStatus
	ClaimType     *models.ClaimType
}

// ClaimRepository handles database operations for claims
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create stores a new PENDING claim
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	return translateError(r.db.WithContext(ctx).Create(claim).Error, nil, nil)
}

// GetByID retrieves a claim by ID
func (r *ClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).First(&claim, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrClaimNotFound, nil)
	}
	return &claim, nil
}

// GetByIDInCenter retrieves a claim only if it belongs to centerID
func (r *ClaimRepository) GetByIDInCenter(ctx context.Context, id, centerID uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).First(&claim, "id = ? AND center_id = ?", id, centerID).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrClaimNotFound, nil)
	}
	return &claim, nil
}

// List retrieves claims newest first with pagination
func (r *ClaimRepository) List(ctx context.Context, filter ClaimFilter, limit, offset int) ([]models.Claim, int64, error) {
	var claims []models.Claim
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Claim{})
	if filter.CenterID != nil {
		query = query.Where("center_id = ?", *filter.CenterID)
	}
	if filter.SubmittedByID != nil {
		query = query.Where("submitted_by_id = ?", *filter.SubmittedByID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ClaimType != nil {
		query = query.Where("claim_type = ?", *filter.ClaimType)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("submitted_at DESC").Limit(limit).Offset(offset).Find(&claims).Error; err != nil {
		return nil, 0, err
	}

	return claims, total, nil
}

// TransitionStatus moves a PENDING claim of centerID to status in a single
// conditional UPDATE. When nothing matches, the claim is re-read within the
// same center to tell a missing claim from one already processed.
func (r *ClaimRepository) TransitionStatus(ctx context.Context, id, centerID uuid.UUID, status models.ClaimStatus, processedBy uuid.UUID, at time.Time) (*models.Claim, error) {
	db := r.db.WithContext(ctx)

	var updated []models.Claim
	result := db.Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND center_id = ? AND status = ?", id, centerID, models.ClaimStatusPending).
		Updates(map[string]interface{}{
			"status":          status,
			"processed_at":    at,
			"processed_by_id": processedBy,
			"updated_at":      at,
		})
	if result.Error != nil {
		return nil, translateError(result.Error, nil, apperrors.ErrUserNotFound)
	}

	if result.RowsAffected == 0 || len(updated) == 0 {
		if _, err := r.GetByIDInCenter(ctx, id, centerID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrClaimAlreadyProcessed
	}

	return &updated[0], nil
}
