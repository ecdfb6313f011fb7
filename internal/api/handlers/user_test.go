package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"claims-portal-backend/internal/api/handlers"
	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/mocks"
	"claims-portal-backend/internal/service"
	"claims-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite covers the user directory, login and profile handlers
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockService  *mocks.MockUserServiceInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	httpSuite    *testutils.HTTPTestSuite
	registry     *auth.Actor
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.registry = testutils.RegistryActor()

	authService, err := auth.NewAuthService(auth.NewAuthConfig("test-signing-key", time.Hour), suite.mockUserRepo)
	require.NoError(suite.T(), err)

	userHandler := handlers.NewUserHandler(suite.mockService)
	authHandler := handlers.NewAuthHandler(authService, suite.mockService)

	suite.httpSuite.Router.POST("/api/auth/login", authHandler.Login)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.GET("/me", authHandler.Me)
		v1.POST("/users", userHandler.CreateUser)
		v1.GET("/users", userHandler.ListUsers)
		v1.GET("/users/:id", userHandler.GetUser)
		v1.DELETE("/users/:id", userHandler.DeleteUser)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestLogin tests the Login handler against a real token issuer
func (suite *UserHandlerTestSuite) TestLogin() {
	hash, err := auth.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := testutils.NewUserFactory().Create(models.RoleLecturer)
	user.Email = "jane@example.com"
	user.PasswordHash = hash

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "Jane@Example.com",
			"password": "correct-horse",
		})

		env := testutils.AssertEnvelope(t, recorder, http.StatusOK)
		var got auth.LoginResponse
		testutils.DecodeData(t, env, &got)
		assert.NotEmpty(t, got.AccessToken)
		assert.Equal(t, "Bearer", got.TokenType)
		assert.Equal(t, user.ID, got.Profile.ID)
	})

	suite.T().Run("WrongPassword", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "jane@example.com",
			"password": "wrong",
		})

		env := testutils.AssertEnvelope(t, recorder, http.StatusUnauthorized)
		assert.Equal(t, apperrors.ErrInvalidCredentials.Error(), env.Message)
	})

	suite.T().Run("UnknownEmail", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, apperrors.ErrUserNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "ghost@example.com",
			"password": "whatever",
		})

		env := testutils.AssertEnvelope(t, recorder, http.StatusUnauthorized)
		assert.Equal(t, apperrors.ErrInvalidCredentials.Error(), env.Message)
	})

	suite.T().Run("MissingPassword", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "jane@example.com"})

		env := testutils.AssertEnvelope(t, recorder, http.StatusBadRequest)
		assert.Equal(t, "is required", env.Errors["password"])
	})
}

// TestMe tests the profile endpoint
func (suite *UserHandlerTestSuite) TestMe() {
	centerID := uuid.New()
	coordinator := testutils.CoordinatorActor(centerID)
	suite.httpSuite.AsActor(coordinator)

	suite.mockService.EXPECT().GetProfile(gomock.Any(), coordinator).Return(&service.ProfileResponse{
		UserResponse:        service.UserResponse{ID: coordinator.ID, Email: coordinator.Email, Role: models.RoleCoordinator},
		CoordinatedCenterID: &centerID,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me", nil)

	env := testutils.AssertEnvelope(suite.T(), recorder, http.StatusOK)
	var got service.ProfileResponse
	testutils.DecodeData(suite.T(), env, &got)
	suite.Equal(coordinator.ID, got.ID)
	suite.Equal(centerID, *got.CoordinatedCenterID)
}

// TestCreateUser tests the CreateUser handler
func (suite *UserHandlerTestSuite) TestCreateUser() {
	suite.httpSuite.AsActor(suite.registry)

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateUser(gomock.Any(), suite.registry, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Actor, req *service.CreateUserRequest) (*service.UserResponse, error) {
				assert.Equal(t, "LECTURER", req.Role)
				return &service.UserResponse{ID: uuid.New(), Email: req.Email, Role: models.RoleLecturer}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users", map[string]string{
			"email":    "new@example.com",
			"password": "long-enough",
			"role":     "LECTURER",
		})

		testutils.AssertEnvelope(t, recorder, http.StatusCreated)
	})

	suite.T().Run("DuplicateEmail", func(t *testing.T) {
		suite.mockService.EXPECT().CreateUser(gomock.Any(), suite.registry, gomock.Any()).Return(nil, apperrors.ErrUserExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users", map[string]string{
			"email":    "new@example.com",
			"password": "long-enough",
			"role":     "LECTURER",
		})

		env := testutils.AssertEnvelope(t, recorder, http.StatusConflict)
		assert.Equal(t, "user already exists with this email", env.Message)
	})
}

// TestListUsers tests query parsing for ListUsers
func (suite *UserHandlerTestSuite) TestListUsers() {
	centerID := uuid.New()
	coordinator := testutils.CoordinatorActor(centerID)
	suite.httpSuite.AsActor(coordinator)

	suite.mockService.EXPECT().
		ListUsers(gomock.Any(), coordinator, &service.ListUsersRequest{Unaffiliated: true, Limit: 50, Offset: 0}).
		Return([]service.UserResponse{}, int64(0), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users?unaffiliated=true&limit=50", nil)

	env := testutils.AssertEnvelope(suite.T(), recorder, http.StatusOK)
	var got struct {
		Items []service.UserResponse `json:"items"`
		Limit int                    `json:"limit"`
	}
	testutils.DecodeData(suite.T(), env, &got)
	suite.NotNil(got.Items)
	suite.Equal(50, got.Limit)
}

// TestGetUser tests the GetUser handler
func (suite *UserHandlerTestSuite) TestGetUser() {
	lecturer := testutils.LecturerActor(uuid.New())
	suite.httpSuite.AsActor(lecturer)
	id := uuid.New()

	suite.mockService.EXPECT().GetUser(gomock.Any(), lecturer, id).Return(nil, apperrors.ErrNotPermitted)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/"+id.String(), nil)

	testutils.AssertEnvelope(suite.T(), recorder, http.StatusForbidden)
}

// TestDeleteUser tests the DeleteUser handler
func (suite *UserHandlerTestSuite) TestDeleteUser() {
	suite.httpSuite.AsActor(suite.registry)
	id := uuid.New()

	suite.mockService.EXPECT().DeleteUser(gomock.Any(), suite.registry, id).Return(apperrors.ErrUserInUse)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/users/"+id.String(), nil)

	testutils.AssertEnvelope(suite.T(), recorder, http.StatusConflict)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
