package repository

import (
	"errors"
	"fmt"

	apperrors "claims-portal-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// uniqueIndexErrors maps unique index names (see the models) to domain errors
var uniqueIndexErrors = map[string]error{
	"idx_users_email":             apperrors.ErrUserExists,
	"idx_centers_name":            apperrors.ErrCenterExists,
	"idx_centers_coordinator":     apperrors.ErrCoordinatorAlreadyAssigned,
	"idx_departments_name_center": apperrors.ErrDepartmentExists,
}

// foreignKeyErrors maps foreign key constraint names (gorm's fk_<table>_<relation>)
// to the domain error for the missing referenced row
var foreignKeyErrors = map[string]error{
	"fk_claims_submitted_by": apperrors.ErrUserNotFound,
	"fk_claims_processed_by": apperrors.ErrUserNotFound,
	"fk_claims_center":       apperrors.ErrCenterNotFound,
}

// translateError normalizes driver errors into domain errors. notFound is
// returned for gorm.ErrRecordNotFound, fkViolation for foreign key failures
// on constraints not listed in foreignKeyErrors; either may be nil to keep
// the original error.
func translateError(err, notFound, fkViolation error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if mapped, ok := uniqueIndexErrors[pgErr.ConstraintName]; ok {
				return mapped
			}
			return apperrors.NewAlreadyExistsError("record", "")
		case pgForeignKeyViolation:
			if mapped, ok := foreignKeyErrors[pgErr.ConstraintName]; ok {
				return mapped
			}
			if fkViolation != nil {
				return fkViolation
			}
		case pgCheckViolation:
			return fmt.Errorf("check constraint %s violated: %w", pgErr.ConstraintName, err)
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewAlreadyExistsError("record", "")
	case errors.Is(err, gorm.ErrForeignKeyViolated) && fkViolation != nil:
		return fkViolation
	}
	return err
}
