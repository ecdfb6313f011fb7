package service_test

import (
	"context"
	"errors"
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

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockCenterRepo    *mocks.MockCenterRepositoryInterface
	assignmentService *service.AssignmentService
	ctx               context.Context
	centerID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCenterRepo = mocks.NewMockCenterRepositoryInterface(suite.ctrl)
	suite.assignmentService = service.NewAssignmentService(suite.mockUserRepo, suite.mockCenterRepo, service.NewValidator(), 3)
	suite.ctx = context.Background()
	suite.centerID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAssignLecturerToDepartment tests a single assignment
func (suite *AssignmentServiceTestSuite) TestAssignLecturerToDepartment() {
	lecturerID, departmentID := uuid.New(), uuid.New()
	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), lecturerID, suite.centerID, &departmentID).Return(nil)

	err := suite.assignmentService.AssignLecturerToDepartment(suite.ctx, testutils.CoordinatorActor(suite.centerID), suite.centerID, departmentID, lecturerID)

	suite.NoError(err)
}

// TestAssignLecturerToDepartmentNotFound tests that lookups scoped to the center pass through
func (suite *AssignmentServiceTestSuite) TestAssignLecturerToDepartmentNotFound() {
	lecturerID, departmentID := uuid.New(), uuid.New()
	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), lecturerID, suite.centerID, gomock.Any()).Return(apperrors.ErrDepartmentNotFound)

	err := suite.assignmentService.AssignLecturerToDepartment(suite.ctx, testutils.RegistryActor(), suite.centerID, departmentID, lecturerID)

	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

// TestAssignLecturerOtherCenterDenied tests center scoping for coordinators
func (suite *AssignmentServiceTestSuite) TestAssignLecturerOtherCenterDenied() {
	err := suite.assignmentService.AssignLecturerToDepartment(suite.ctx, testutils.CoordinatorActor(uuid.New()), suite.centerID, uuid.New(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrNotPermitted)
}

// TestUnassignLecturerFromDepartment tests clearing a department
func (suite *AssignmentServiceTestSuite) TestUnassignLecturerFromDepartment() {
	lecturerID := uuid.New()
	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), lecturerID, suite.centerID, nil).Return(nil)

	err := suite.assignmentService.UnassignLecturerFromDepartment(suite.ctx, testutils.CoordinatorActor(suite.centerID), suite.centerID, lecturerID)

	suite.NoError(err)
}

// TestAddLecturerToCenter tests adding and the other-center conflict
func (suite *AssignmentServiceTestSuite) TestAddLecturerToCenter() {
	lecturerID := uuid.New()
	actor := testutils.CoordinatorActor(suite.centerID)

	suite.mockUserRepo.EXPECT().AddToCenter(gomock.Any(), lecturerID, suite.centerID).Return(nil)
	suite.NoError(suite.assignmentService.AddLecturerToCenter(suite.ctx, actor, suite.centerID, lecturerID))

	suite.mockUserRepo.EXPECT().AddToCenter(gomock.Any(), lecturerID, suite.centerID).Return(apperrors.ErrLecturerInAnotherCenter)
	suite.ErrorIs(suite.assignmentService.AddLecturerToCenter(suite.ctx, actor, suite.centerID, lecturerID), apperrors.ErrLecturerInAnotherCenter)
}

// TestRemoveLecturerFromCenter tests removal
func (suite *AssignmentServiceTestSuite) TestRemoveLecturerFromCenter() {
	lecturerID := uuid.New()
	suite.mockUserRepo.EXPECT().RemoveFromCenter(gomock.Any(), lecturerID, suite.centerID).Return(apperrors.ErrLecturerNotFound)

	err := suite.assignmentService.RemoveLecturerFromCenter(suite.ctx, testutils.RegistryActor(), suite.centerID, lecturerID)

	suite.ErrorIs(err, apperrors.ErrLecturerNotFound)
}

// TestChangeCenterCoordinator tests a successful coordinator swap
func (suite *AssignmentServiceTestSuite) TestChangeCenterCoordinator() {
	coordinator := testutils.NewUserFactory().Create(models.RoleCoordinator)
	center := testutils.NewCenterFactory().Create(coordinator.ID)

	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), coordinator.ID).Return(coordinator, nil)
	suite.mockCenterRepo.EXPECT().ReassignCoordinator(gomock.Any(), center.ID, coordinator.ID).Return(nil)
	suite.mockCenterRepo.EXPECT().GetByID(gomock.Any(), center.ID).Return(center, nil)

	resp, err := suite.assignmentService.ChangeCenterCoordinator(suite.ctx, testutils.RegistryActor(), center.ID, &service.ChangeCoordinatorRequest{NewCoordinatorID: coordinator.ID})

	suite.Require().NoError(err)
	suite.Equal(coordinator.ID, resp.CoordinatorID)
	suite.Equal(coordinator.ID, resp.Coordinator.ID)
}

// TestChangeCenterCoordinatorWrongRole tests that lecturers cannot coordinate
func (suite *AssignmentServiceTestSuite) TestChangeCenterCoordinatorWrongRole() {
	lecturer := testutils.NewUserFactory().Create(models.RoleLecturer)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), lecturer.ID).Return(lecturer, nil)

	_, err := suite.assignmentService.ChangeCenterCoordinator(suite.ctx, testutils.RegistryActor(), suite.centerID, &service.ChangeCoordinatorRequest{NewCoordinatorID: lecturer.ID})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(apperrors.ValidationFields(err), "newCoordinatorId")
}

// TestChangeCenterCoordinatorTaken tests the one center per coordinator conflict
func (suite *AssignmentServiceTestSuite) TestChangeCenterCoordinatorTaken() {
	coordinator := testutils.NewUserFactory().Create(models.RoleCoordinator)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), coordinator.ID).Return(coordinator, nil)
	suite.mockCenterRepo.EXPECT().ReassignCoordinator(gomock.Any(), suite.centerID, coordinator.ID).Return(apperrors.ErrCoordinatorAlreadyAssigned)

	_, err := suite.assignmentService.ChangeCenterCoordinator(suite.ctx, testutils.RegistryActor(), suite.centerID, &service.ChangeCoordinatorRequest{NewCoordinatorID: coordinator.ID})

	suite.ErrorIs(err, apperrors.ErrCoordinatorAlreadyAssigned)
}

// TestChangeCenterCoordinatorByCoordinatorDenied tests that only registry swaps coordinators
func (suite *AssignmentServiceTestSuite) TestChangeCenterCoordinatorByCoordinatorDenied() {
	_, err := suite.assignmentService.ChangeCenterCoordinator(suite.ctx, testutils.CoordinatorActor(suite.centerID), suite.centerID, &service.ChangeCoordinatorRequest{NewCoordinatorID: uuid.New()})

	suite.ErrorIs(err, apperrors.ErrNotPermitted)
}

// TestBulkAssignLecturersPartialFailure tests that items are independent
func (suite *AssignmentServiceTestSuite) TestBulkAssignLecturersPartialFailure() {
	ok, missing, broken := uuid.New(), uuid.New(), uuid.New()
	departmentID := uuid.New()

	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), ok, suite.centerID, gomock.Any()).Return(nil)
	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), missing, suite.centerID, gomock.Any()).Return(apperrors.ErrLecturerNotFound)
	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), broken, suite.centerID, gomock.Any()).Return(errors.New("connection reset"))

	req := &service.BulkAssignRequest{Items: []service.BulkAssignItem{
		{LecturerID: ok, DepartmentID: departmentID},
		{LecturerID: missing, DepartmentID: departmentID},
		{LecturerID: broken, DepartmentID: departmentID},
	}}
	result, err := suite.assignmentService.BulkAssignLecturers(suite.ctx, testutils.CoordinatorActor(suite.centerID), suite.centerID, req)

	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{ok}, result.Succeeded)
	suite.Require().Len(result.Failed, 2)
	suite.Equal(missing, result.Failed[0].ID)
	suite.Equal(apperrors.ErrLecturerNotFound.Error(), result.Failed[0].Reason)
	suite.Equal("an unexpected error occurred", result.Failed[1].Reason)
}

// TestBulkAssignLecturersValidation tests item validation paths
func (suite *AssignmentServiceTestSuite) TestBulkAssignLecturersValidation() {
	req := &service.BulkAssignRequest{Items: []service.BulkAssignItem{{LecturerID: uuid.New()}}}

	_, err := suite.assignmentService.BulkAssignLecturers(suite.ctx, testutils.RegistryActor(), suite.centerID, req)

	suite.True(apperrors.IsValidation(err))
	suite.Equal("is required", apperrors.ValidationFields(err)["items[0].departmentId"])
}

// TestBulkAssignLecturersTooMany tests the batch size cap
func (suite *AssignmentServiceTestSuite) TestBulkAssignLecturersTooMany() {
	items := make([]service.BulkAssignItem, 4)
	for i := range items {
		items[i] = service.BulkAssignItem{LecturerID: uuid.New(), DepartmentID: uuid.New()}
	}

	_, err := suite.assignmentService.BulkAssignLecturers(suite.ctx, testutils.RegistryActor(), suite.centerID, &service.BulkAssignRequest{Items: items})

	suite.True(apperrors.IsValidation(err))
	suite.Equal("must contain at most 3 items", apperrors.ValidationFields(err)["items"])
}

// TestBulkUnassignLecturers tests the unassign batch
func (suite *AssignmentServiceTestSuite) TestBulkUnassignLecturers() {
	first, second := uuid.New(), uuid.New()
	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), first, suite.centerID, nil).Return(nil)
	suite.mockUserRepo.EXPECT().SetDepartment(gomock.Any(), second, suite.centerID, nil).Return(nil)

	result, err := suite.assignmentService.BulkUnassignLecturers(suite.ctx, testutils.CoordinatorActor(suite.centerID), suite.centerID, &service.BulkUnassignRequest{LecturerIDs: []uuid.UUID{first, second}})

	suite.Require().NoError(err)
	suite.Len(result.Succeeded, 2)
	suite.Empty(result.Failed)
	suite.NotNil(result.Failed)
}

// TestBulkUnassignLecturersEmpty tests that an empty batch is rejected
func (suite *AssignmentServiceTestSuite) TestBulkUnassignLecturersEmpty() {
	_, err := suite.assignmentService.BulkUnassignLecturers(suite.ctx, testutils.RegistryActor(), suite.centerID, &service.BulkUnassignRequest{})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(apperrors.ValidationFields(err), "lecturerIds")
}

// TestAssignmentServiceTestSuite runs the test suite
func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
