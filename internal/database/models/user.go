package models

import (
	"github.com/google/uuid"
)

// User is a member of the organization. A coordinator's center is the inverse
// of Center.CoordinatorID; a lecturer points at its center and department.
type User struct {
	BaseModel
	Email            string     `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	Name             *string    `json:"name,omitempty" gorm:"size:200" validate:"omitempty,max=200"`
	PasswordHash     string     `json:"-" gorm:"not null;size:100"`
	Role             Role       `json:"role" gorm:"type:varchar(20);not null;index" validate:"required"`
	LecturerCenterID *uuid.UUID `json:"lecturerCenterId,omitempty" gorm:"type:uuid;index"`
	DepartmentID     *uuid.UUID `json:"departmentId,omitempty" gorm:"type:uuid;index"`

	// Relationships
	LecturerCenter *Center     `json:"-" gorm:"foreignKey:LecturerCenterID"`
	Department     *Department `json:"-" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
