package testutils

import (
	"fmt"
	"time"

	"claims-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FactorySet groups all factories used by tests
type FactorySet struct {
	User       *UserFactory
	Center     *CenterFactory
	Department *DepartmentFactory
	Claim      *ClaimFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Center:     NewCenterFactory(),
		Department: NewDepartmentFactory(),
		Claim:      NewClaimFactory(),
	}
}

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Emails are unique per call.
func (f *UserFactory) Create(role models.Role) *models.User {
	base := newBase()
	name := "Test " + string(role)
	return &models.User{
		BaseModel: base,
		Email:     fmt.Sprintf("%s.%s@test.com", role, base.ID.String()[:8]),
		Name:      &name,
		// bcrypt hash of "password"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         role,
	}
}

// Lecturer creates a lecturer belonging to centerID
func (f *UserFactory) Lecturer(centerID uuid.UUID) *models.User {
	u := f.Create(models.RoleLecturer)
	u.LecturerCenterID = &centerID
	return u
}

// CenterFactory provides methods to create test Center data
type CenterFactory struct{}

// NewCenterFactory creates a new CenterFactory
func NewCenterFactory() *CenterFactory {
	return &CenterFactory{}
}

// Create creates a test Center coordinated by coordinatorID
func (f *CenterFactory) Create(coordinatorID uuid.UUID) *models.Center {
	base := newBase()
	return &models.Center{
		BaseModel:     base,
		Name:          "Center " + base.ID.String()[:8],
		CoordinatorID: coordinatorID,
	}
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department in centerID
func (f *DepartmentFactory) Create(centerID uuid.UUID) *models.Department {
	base := newBase()
	return &models.Department{
		BaseModel: base,
		Name:      "Department " + base.ID.String()[:8],
		CenterID:  centerID,
	}
}

// WithName creates a test Department with a fixed name
func (f *DepartmentFactory) WithName(centerID uuid.UUID, name string) *models.Department {
	d := f.Create(centerID)
	d.Name = name
	return d
}

// ClaimFactory provides methods to create test Claim data
type ClaimFactory struct{}

// NewClaimFactory creates a new ClaimFactory
func NewClaimFactory() *ClaimFactory {
	return &ClaimFactory{}
}

// Teaching creates a pending TEACHING claim
func (f *ClaimFactory) Teaching(centerID, submitterID uuid.UUID) *models.Claim {
	date := datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	start, end := "09:00", "11:00"
	return &models.Claim{
		ID:            uuid.New(),
		ClaimType:     models.ClaimTypeTeaching,
		SubmittedByID: submitterID,
		CenterID:      centerID,
		Status:        models.ClaimStatusPending,
		TeachingDate:  &date,
		StartTime:     &start,
		EndTime:       &end,
	}
}

// Graph is a persisted center with its coordinator, one department and one lecturer
type Graph struct {
	Coordinator *models.User
	Center      *models.Center
	Department  *models.Department
	Lecturer    *models.User
}

// CreateGraph persists a coordinator, a center, a department and a lecturer
func (fs *FactorySet) CreateGraph(db *gorm.DB) (*Graph, error) {
	g := &Graph{Coordinator: fs.User.Create(models.RoleCoordinator)}
	if err := db.Create(g.Coordinator).Error; err != nil {
		return nil, err
	}
	g.Center = fs.Center.Create(g.Coordinator.ID)
	if err := db.Create(g.Center).Error; err != nil {
		return nil, err
	}
	g.Department = fs.Department.Create(g.Center.ID)
	if err := db.Create(g.Department).Error; err != nil {
		return nil, err
	}
	g.Lecturer = fs.User.Lecturer(g.Center.ID)
	if err := db.Create(g.Lecturer).Error; err != nil {
		return nil, err
	}
	return g, nil
}
