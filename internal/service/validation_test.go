package service

import (
	"testing"

	apperrors "claims-portal-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := validateStruct(v, &BulkAssignRequest{Items: []BulkAssignItem{
		{LecturerID: uuid.New(), DepartmentID: uuid.New()},
		{DepartmentID: uuid.New()},
	}})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, map[string]string{"items[1].lecturerId": "is required"}, apperrors.ValidationFields(err))
}

func TestValidateStructMessages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		req   interface{}
		field string
		msg   string
	}{
		{"required", &DepartmentRequest{}, "name", "is required"},
		{"max string", &UpdateCenterNameRequest{NewName: string(make([]rune, 101))}, "newName", "must be at most 100 characters"},
		{"oneof", &ListClaimsRequest{ClaimType: "MEAL"}, "claimType", "must be one of TEACHING, TRANSPORTATION, THESIS_PROJECT"},
		{"min slice", &BulkAssignRequest{Items: []BulkAssignItem{}}, "items", "must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStruct(v, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.msg, apperrors.ValidationFields(err)[tt.field])
		})
	}
}

func TestValidateStructValid(t *testing.T) {
	assert.NoError(t, validateStruct(NewValidator(), &DepartmentRequest{Name: "Physics"}))
}

func TestNormalizePage(t *testing.T) {
	page, size, limit, offset := normalizePage(0, 0)
	assert.Equal(t, []int{1, defaultPageSize, defaultPageSize, 0}, []int{page, size, limit, offset})

	page, size, limit, offset = normalizePage(3, 1000)
	assert.Equal(t, []int{3, maxPageSize, maxPageSize, 2 * maxPageSize}, []int{page, size, limit, offset})
}
