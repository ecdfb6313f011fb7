package service_test

import (
	"context"
	"testing"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/mocks"
	"claims-portal-backend/internal/service"
	"claims-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CenterServiceTestSuite defines the test suite for CenterService
type CenterServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockCenterRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	centerService *service.CenterService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *CenterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCenterRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.centerService = service.NewCenterService(suite.mockRepo, suite.mockUserRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *CenterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCenter tests the successful creation of a center
func (suite *CenterServiceTestSuite) TestCreateCenter() {
	coordinator := testutils.NewUserFactory().Create(models.RoleCoordinator)
	req := &service.CreateCenterRequest{Name: "  Nairobi Campus ", CoordinatorID: coordinator.ID}

	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), coordinator.ID).Return(coordinator, nil)
	suite.mockRepo.EXPECT().GetByCoordinatorID(gomock.Any(), coordinator.ID).Return(nil, apperrors.ErrCenterNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Center) error {
			suite.Equal("Nairobi Campus", c.Name)
			c.ID = uuid.New()
			return nil
		})

	resp, err := suite.centerService.CreateCenter(suite.ctx, testutils.RegistryActor(), req)

	suite.Require().NoError(err)
	suite.Equal("Nairobi Campus", resp.Name)
	suite.Equal(coordinator.ID, resp.CoordinatorID)
	suite.Require().NotNil(resp.Coordinator)
	suite.Equal(coordinator.Email, resp.Coordinator.Email)
}

// TestCreateCenterRequiresRegistry tests that coordinators cannot create centers
func (suite *CenterServiceTestSuite) TestCreateCenterRequiresRegistry() {
	actor := testutils.CoordinatorActor(uuid.New())

	_, err := suite.centerService.CreateCenter(suite.ctx, actor, &service.CreateCenterRequest{Name: "X", CoordinatorID: actor.ID})

	suite.ErrorIs(err, apperrors.ErrNotPermitted)
}

// TestCreateCenterValidation tests required fields
func (suite *CenterServiceTestSuite) TestCreateCenterValidation() {
	_, err := suite.centerService.CreateCenter(suite.ctx, testutils.RegistryActor(), &service.CreateCenterRequest{Name: "   "})

	suite.True(apperrors.IsValidation(err))
	fields := apperrors.ValidationFields(err)
	suite.Equal("is required", fields["name"])
	suite.Equal("is required", fields["coordinatorId"])
}

// TestCreateCenterWrongRole tests that only coordinators can coordinate
func (suite *CenterServiceTestSuite) TestCreateCenterWrongRole() {
	lecturer := testutils.NewUserFactory().Create(models.RoleLecturer)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), lecturer.ID).Return(lecturer, nil)

	_, err := suite.centerService.CreateCenter(suite.ctx, testutils.RegistryActor(), &service.CreateCenterRequest{Name: "X", CoordinatorID: lecturer.ID})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(apperrors.ValidationFields(err), "coordinatorId")
}

// TestCreateCenterCoordinatorTaken tests the one center per coordinator rule
func (suite *CenterServiceTestSuite) TestCreateCenterCoordinatorTaken() {
	coordinator := testutils.NewUserFactory().Create(models.RoleCoordinator)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), coordinator.ID).Return(coordinator, nil)
	suite.mockRepo.EXPECT().GetByCoordinatorID(gomock.Any(), coordinator.ID).Return(testutils.NewCenterFactory().Create(coordinator.ID), nil)

	_, err := suite.centerService.CreateCenter(suite.ctx, testutils.RegistryActor(), &service.CreateCenterRequest{Name: "X", CoordinatorID: coordinator.ID})

	suite.ErrorIs(err, apperrors.ErrCoordinatorAlreadyAssigned)
}

// TestGetCenter tests the detail view for the center coordinator
func (suite *CenterServiceTestSuite) TestGetCenter() {
	coordinatorID := uuid.New()
	center := testutils.NewCenterFactory().Create(coordinatorID)
	center.Departments = []models.Department{*testutils.NewDepartmentFactory().Create(center.ID)}
	center.Lecturers = []models.User{*testutils.NewUserFactory().Lecturer(center.ID)}
	actor := testutils.CoordinatorActor(center.ID)

	suite.mockRepo.EXPECT().GetWithRelations(gomock.Any(), center.ID).Return(center, nil)

	resp, err := suite.centerService.GetCenter(suite.ctx, actor, center.ID)

	suite.Require().NoError(err)
	suite.Len(resp.Departments, 1)
	suite.Len(resp.Lecturers, 1)
	suite.Equal(center.ID, resp.Departments[0].CenterID)
}

// TestGetCenterLecturerDenied tests that lecturers cannot view center details
func (suite *CenterServiceTestSuite) TestGetCenterLecturerDenied() {
	centerID := uuid.New()

	_, err := suite.centerService.GetCenter(suite.ctx, testutils.LecturerActor(centerID), centerID)

	suite.ErrorIs(err, apperrors.ErrNotPermitted)
}

// TestListCentersRegistry tests paging for registry actors
func (suite *CenterServiceTestSuite) TestListCentersRegistry() {
	centers := []models.Center{*testutils.NewCenterFactory().Create(uuid.New()), *testutils.NewCenterFactory().Create(uuid.New())}
	suite.mockRepo.EXPECT().GetAll(gomock.Any(), 100, 0).Return(centers, int64(2), nil)

	resp, total, err := suite.centerService.ListCenters(suite.ctx, testutils.RegistryActor(), 500, -3)

	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(resp, 2)
}

// TestListCentersCoordinator tests that coordinators only see their center
func (suite *CenterServiceTestSuite) TestListCentersCoordinator() {
	center := testutils.NewCenterFactory().Create(uuid.New())
	suite.mockRepo.EXPECT().GetWithRelations(gomock.Any(), center.ID).Return(center, nil)

	resp, total, err := suite.centerService.ListCenters(suite.ctx, testutils.CoordinatorActor(center.ID), 0, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(center.ID, resp[0].ID)
}

// TestListCentersCoordinatorWithoutCenter tests a coordinator that holds no center
func (suite *CenterServiceTestSuite) TestListCentersCoordinatorWithoutCenter() {
	actor := testutils.CoordinatorActor(uuid.Nil)
	actor.CoordinatedCenterID = nil

	_, _, err := suite.centerService.ListCenters(suite.ctx, actor, 0, 0)

	suite.ErrorIs(err, apperrors.ErrNotPermitted)
}

// TestUpdateCenterName tests renaming
func (suite *CenterServiceTestSuite) TestUpdateCenterName() {
	center := testutils.NewCenterFactory().Create(uuid.New())
	center.Name = "Mombasa Campus"

	suite.mockRepo.EXPECT().Rename(gomock.Any(), center.ID, "Mombasa Campus").Return(nil)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), center.ID).Return(center, nil)

	resp, err := suite.centerService.UpdateCenterName(suite.ctx, testutils.RegistryActor(), center.ID, &service.UpdateCenterNameRequest{NewName: " Mombasa Campus"})

	suite.Require().NoError(err)
	suite.Equal("Mombasa Campus", resp.Name)
}

// TestUpdateCenterNameDuplicate tests that name conflicts pass through
func (suite *CenterServiceTestSuite) TestUpdateCenterNameDuplicate() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Rename(gomock.Any(), id, "Taken").Return(apperrors.ErrCenterExists)

	_, err := suite.centerService.UpdateCenterName(suite.ctx, testutils.RegistryActor(), id, &service.UpdateCenterNameRequest{NewName: "Taken"})

	suite.ErrorIs(err, apperrors.ErrCenterExists)
}

// TestDeleteCenterWithClaims tests the claims refusal
func (suite *CenterServiceTestSuite) TestDeleteCenterWithClaims() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrCenterHasClaims)

	err := suite.centerService.DeleteCenter(suite.ctx, testutils.RegistryActor(), id)

	suite.ErrorIs(err, apperrors.ErrCenterHasClaims)
}

// TestDeleteCenterCoordinatorDenied tests that coordinators cannot delete their own center
func (suite *CenterServiceTestSuite) TestDeleteCenterCoordinatorDenied() {
	id := uuid.New()

	err := suite.centerService.DeleteCenter(suite.ctx, testutils.CoordinatorActor(id), id)

	suite.ErrorIs(err, apperrors.ErrNotPermitted)
}

// TestCenterServiceTestSuite runs the test suite
func TestCenterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CenterServiceTestSuite))
}
