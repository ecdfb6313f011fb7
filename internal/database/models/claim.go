package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ThesisStudent is one supervised (student, thesis) pair, stored as jsonb
type ThesisStudent struct {
	StudentName string `json:"studentName"`
	ThesisTitle string `json:"thesisTitle"`
}

// Claim is a compensation request scoped to a center. Type-specific columns
// are nullable and only the ones owned by ClaimType are ever set.
type Claim struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClaimType     ClaimType   `json:"claimType" gorm:"type:varchar(20);not null;index"`
	SubmittedByID uuid.UUID   `json:"submittedById" gorm:"type:uuid;not null;index"`
	CenterID      uuid.UUID   `json:"centerId" gorm:"type:uuid;not null;index"`
	Status        ClaimStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index;check:chk_claims_processed,(status = 'PENDING') = (processed_at IS NULL AND processed_by_id IS NULL)"`
	SubmittedAt   time.Time   `json:"submittedAt" gorm:"not null;autoCreateTime"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	ProcessedAt   *time.Time  `json:"processedAt,omitempty"`
	ProcessedByID *uuid.UUID  `json:"processedById,omitempty" gorm:"type:uuid"`
	Description   *string     `json:"description,omitempty" gorm:"size:1000"`

	// TEACHING
	TeachingDate *datatypes.Date `json:"-" gorm:"type:date"`
	StartTime    *string         `json:"-" gorm:"size:5"`
	EndTime      *string         `json:"-" gorm:"size:5"`
	ContactHours *float64        `json:"-"`

	// TRANSPORTATION
	TransportType   *TransportType `json:"-" gorm:"type:varchar(10)"`
	DestinationFrom *string        `json:"-" gorm:"size:200"`
	DestinationTo   *string        `json:"-" gorm:"size:200"`
	RegNumber       *string        `json:"-" gorm:"size:20"`
	CubicCapacity   *int           `json:"-"`
	Amount          *float64       `json:"-" gorm:"type:numeric(12,2)"`

	// THESIS_PROJECT
	ThesisType      *ThesisType                         `json:"-" gorm:"type:varchar(20)"`
	SupervisionRank *string                             `json:"-" gorm:"size:50"`
	Students        *datatypes.JSONSlice[ThesisStudent] `json:"-" gorm:"type:jsonb"`
	CourseCode      *string                             `json:"-" gorm:"size:20"`
	ExamDate        *datatypes.Date                     `json:"-" gorm:"type:date"`

	// Relationships
	SubmittedBy *User   `json:"-" gorm:"foreignKey:SubmittedByID;constraint:OnDelete:RESTRICT"`
	ProcessedBy *User   `json:"-" gorm:"foreignKey:ProcessedByID;constraint:OnDelete:RESTRICT"`
	Center      *Center `json:"-" gorm:"foreignKey:CenterID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Claim
func (Claim) TableName() string {
	return "claims"
}

// BeforeCreate sets the UUID and forces the initial state
func (c *Claim) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Status = ClaimStatusPending
	c.ProcessedAt = nil
	c.ProcessedByID = nil
	return nil
}
