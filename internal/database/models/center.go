package models

import (
	"github.com/google/uuid"
)

// Center is the top-level organizational unit. Exactly one coordinator per
// center, and a coordinator never holds two centers (unique coordinator_id).
type Center struct {
	BaseModel
	Name          string    `json:"name" gorm:"uniqueIndex:idx_centers_name;not null;size:200" validate:"required,min=1,max=200"`
	CoordinatorID uuid.UUID `json:"coordinatorId" gorm:"type:uuid;not null;uniqueIndex:idx_centers_coordinator" validate:"required"`

	// Relationships
	Coordinator *User        `json:"coordinator,omitempty" gorm:"foreignKey:CoordinatorID;constraint:OnDelete:RESTRICT"`
	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:CenterID;constraint:OnDelete:CASCADE"`
	Lecturers   []User       `json:"lecturers,omitempty" gorm:"foreignKey:LecturerCenterID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Center
func (Center) TableName() string {
	return "centers"
}
