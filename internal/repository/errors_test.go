package repository

import (
	"errors"
	"fmt"
	"testing"

	apperrors "claims-portal-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	fallback := errors.New("fallback")

	tests := []struct {
		name        string
		err         error
		notFound    error
		fkViolation error
		want        error
	}{
		{"nil", nil, nil, nil, nil},
		{"record not found", gorm.ErrRecordNotFound, apperrors.ErrClaimNotFound, nil, apperrors.ErrClaimNotFound},
		{"unique on email", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}, nil, nil, apperrors.ErrUserExists},
		{"submitter missing", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_claims_submitted_by"}, nil, fallback, apperrors.ErrUserNotFound},
		{"center missing", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_claims_center"}, nil, nil, apperrors.ErrCenterNotFound},
		{"unlisted foreign key", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_users_department"}, nil, fallback, fallback},
		{"wrapped foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_claims_processed_by"}), nil, nil, apperrors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, tt.notFound, tt.fkViolation)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
