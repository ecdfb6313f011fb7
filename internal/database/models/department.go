package models

import (
	"github.com/google/uuid"
)

// Department is a sub-unit of a center; names are unique per center
type Department struct {
	BaseModel
	Name     string    `json:"name" gorm:"uniqueIndex:idx_departments_name_center;not null;size:200" validate:"required,min=1,max=200"`
	CenterID uuid.UUID `json:"centerId" gorm:"type:uuid;not null;uniqueIndex:idx_departments_name_center;index" validate:"required"`

	// Relationships
	Center *Center `json:"-" gorm:"foreignKey:CenterID"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
