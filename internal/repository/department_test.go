//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// DepartmentRepositoryTestSuite tests the DepartmentRepository
type DepartmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DepartmentRepository
	users         *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *DepartmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDepartmentRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *DepartmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DepartmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DepartmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DepartmentRepositoryTestSuite) graph() *testutils.Graph {
	g, err := suite.factories.CreateGraph(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	return g
}

// TestCreateUniquePerCenter tests that names are unique within a center only
func (suite *DepartmentRepositoryTestSuite) TestCreateUniquePerCenter() {
	g1 := suite.graph()
	g2 := suite.graph()

	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Department.WithName(g1.Center.ID, "Mathematics")))

	err := suite.repo.Create(suite.ctx, suite.factories.Department.WithName(g1.Center.ID, "Mathematics"))
	suite.ErrorIs(err, apperrors.ErrDepartmentExists)

	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Department.WithName(g2.Center.ID, "Mathematics")))
}

// TestCreateUnknownCenter tests the foreign key translation
func (suite *DepartmentRepositoryTestSuite) TestCreateUnknownCenter() {
	err := suite.repo.Create(suite.ctx, suite.factories.Department.Create(uuid.New()))
	suite.ErrorIs(err, apperrors.ErrCenterNotFound)
}

// TestGetByCenterID tests listing ordered by name
func (suite *DepartmentRepositoryTestSuite) TestGetByCenterID() {
	g := suite.graph()
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Department.WithName(g.Center.ID, "AAA Accounting")))

	departments, err := suite.repo.GetByCenterID(suite.ctx, g.Center.ID)
	suite.Require().NoError(err)
	suite.Require().Len(departments, 2)
	suite.Equal("AAA Accounting", departments[0].Name)
}

// TestRenameScopedToCenter tests that another center's department cannot be renamed
func (suite *DepartmentRepositoryTestSuite) TestRenameScopedToCenter() {
	g1 := suite.graph()
	g2 := suite.graph()

	err := suite.repo.Rename(suite.ctx, g2.Department.ID, g1.Center.ID, "Physics")
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)

	suite.Require().NoError(suite.repo.Rename(suite.ctx, g1.Department.ID, g1.Center.ID, "Physics"))
	got, err := suite.repo.GetByIDInCenter(suite.ctx, g1.Department.ID, g1.Center.ID)
	suite.Require().NoError(err)
	suite.Equal("Physics", got.Name)
}

// TestRenameDuplicate tests the unique index on rename
func (suite *DepartmentRepositoryTestSuite) TestRenameDuplicate() {
	g := suite.graph()
	other := suite.factories.Department.WithName(g.Center.ID, "Chemistry")
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))

	err := suite.repo.Rename(suite.ctx, g.Department.ID, g.Center.ID, "Chemistry")
	suite.ErrorIs(err, apperrors.ErrDepartmentExists)
}

// TestDeleteUnassignsLecturers tests that lecturers keep their center but lose the department
func (suite *DepartmentRepositoryTestSuite) TestDeleteUnassignsLecturers() {
	g := suite.graph()
	suite.Require().NoError(suite.users.SetDepartment(suite.ctx, g.Lecturer.ID, g.Center.ID, &g.Department.ID))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, g.Department.ID, g.Center.ID))

	lecturer, err := suite.users.GetByID(suite.ctx, g.Lecturer.ID)
	suite.Require().NoError(err)
	suite.Nil(lecturer.DepartmentID)
	suite.Require().NotNil(lecturer.LecturerCenterID)
	suite.Equal(g.Center.ID, *lecturer.LecturerCenterID)

	_, err = suite.repo.GetByIDInCenter(suite.ctx, g.Department.ID, g.Center.ID)
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

// TestDeleteScopedToCenter tests that deleting through another center is a miss
func (suite *DepartmentRepositoryTestSuite) TestDeleteScopedToCenter() {
	g1 := suite.graph()
	g2 := suite.graph()
	suite.Require().NoError(suite.users.SetDepartment(suite.ctx, g2.Lecturer.ID, g2.Center.ID, &g2.Department.ID))

	err := suite.repo.Delete(suite.ctx, g2.Department.ID, g1.Center.ID)
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)

	lecturer, err := suite.users.GetByID(suite.ctx, g2.Lecturer.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(lecturer.DepartmentID)
	suite.Equal(g2.Department.ID, *lecturer.DepartmentID)
}

// TestDepartmentRepositoryTestSuite runs the test suite
func TestDepartmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentRepositoryTestSuite))
}
