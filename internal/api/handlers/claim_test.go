package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"claims-portal-backend/internal/api/handlers"
	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/claims"
	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/mocks"
	"claims-portal-backend/internal/service"
	"claims-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClaimHandlerTestSuite defines the test suite for ClaimHandler
type ClaimHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockClaimServiceInterface
	handler     *handlers.ClaimHandler
	httpSuite   *testutils.HTTPTestSuite
	centerID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ClaimHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockClaimServiceInterface(suite.ctrl)
	suite.handler = handlers.NewClaimHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.centerID = uuid.New()

	claimsGroup := suite.httpSuite.Router.Group("/api/v1/claims")
	{
		claimsGroup.POST("", suite.handler.CreateClaim)
		claimsGroup.GET("", suite.handler.ListClaims)
		claimsGroup.GET("/:id", suite.handler.GetClaim)
		claimsGroup.POST("/:id/approve", suite.handler.ApproveClaim)
		claimsGroup.POST("/:id/reject", suite.handler.RejectClaim)
	}
}

// claimView is the part of a claim response the tests read back
type claimView struct {
	ID     uuid.UUID          `json:"id"`
	Status models.ClaimStatus `json:"status"`
}

// TearDownTest cleans up after each test
func (suite *ClaimHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClaimHandlerTestSuite) claimResponse(status models.ClaimStatus) *service.ClaimResponse {
	return &service.ClaimResponse{
		ID:            uuid.New(),
		ClaimType:     models.ClaimTypeTeaching,
		Status:        status,
		SubmittedByID: uuid.New(),
		CenterID:      suite.centerID,
		Details:       claims.TeachingDetails{StartTime: "09:00", EndTime: "11:00"},
	}
}

// TestCreateClaim tests the CreateClaim handler
func (suite *ClaimHandlerTestSuite) TestCreateClaim() {
	lecturer := testutils.LecturerActor(suite.centerID)
	suite.httpSuite.AsActor(lecturer)

	suite.T().Run("Success", func(t *testing.T) {
		expected := suite.claimResponse(models.ClaimStatusPending)
		suite.mockService.EXPECT().
			CreateClaim(gomock.Any(), lecturer, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Actor, payload map[string]any) (*service.ClaimResponse, error) {
				assert.Equal(t, "TEACHING", payload["claimType"])
				assert.Equal(t, 1.5, payload["contactHours"])
				return expected, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims", map[string]any{
			"claimType":    "TEACHING",
			"date":         "2024-03-01",
			"startTime":    "09:00",
			"endTime":      "11:00",
			"contactHours": 1.5,
		})

		env := testutils.AssertEnvelope(t, recorder, http.StatusCreated)
		var got claimView
		testutils.DecodeData(t, env, &got)
		assert.Equal(t, expected.ID, got.ID)
		assert.Equal(t, models.ClaimStatusPending, got.Status)
	})

	suite.T().Run("ValidationError", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateClaim(gomock.Any(), lecturer, gomock.Any()).
			Return(nil, &apperrors.ValidationError{Fields: map[string]string{"amount": claims.MsgNotANumber}})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims", map[string]any{"claimType": "TRANSPORTATION", "amount": "lots"})

		env := testutils.AssertEnvelope(t, recorder, http.StatusBadRequest)
		assert.Equal(t, "not-a-number", env.Errors["amount"])
	})

	suite.T().Run("Throttled", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateClaim(gomock.Any(), lecturer, gomock.Any()).
			Return(nil, apperrors.ErrClaimSubmissionThrottled)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims", map[string]any{"claimType": "TEACHING"})

		testutils.AssertEnvelope(t, recorder, http.StatusConflict)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		env := testutils.AssertEnvelope(t, recorder, http.StatusBadRequest)
		assert.Contains(t, env.Errors, "body")
	})
}

// TestCreateClaimAnonymous tests that a missing actor yields 401
func (suite *ClaimHandlerTestSuite) TestCreateClaimAnonymous() {
	suite.httpSuite.AsActor(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims", map[string]any{"claimType": "TEACHING"})

	testutils.AssertEnvelope(suite.T(), recorder, http.StatusUnauthorized)
}

// TestApproveClaim tests the ApproveClaim handler
func (suite *ClaimHandlerTestSuite) TestApproveClaim() {
	coordinator := testutils.CoordinatorActor(suite.centerID)
	suite.httpSuite.AsActor(coordinator)
	claimID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		expected := suite.claimResponse(models.ClaimStatusApproved)
		suite.mockService.EXPECT().
			ApproveClaim(gomock.Any(), coordinator, claimID, suite.centerID).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims/"+claimID.String()+"/approve", map[string]string{"centerId": suite.centerID.String()})

		env := testutils.AssertEnvelope(t, recorder, http.StatusOK)
		var got claimView
		testutils.DecodeData(t, env, &got)
		assert.Equal(t, models.ClaimStatusApproved, got.Status)
	})

	suite.T().Run("AlreadyProcessed", func(t *testing.T) {
		suite.mockService.EXPECT().
			ApproveClaim(gomock.Any(), coordinator, claimID, suite.centerID).
			Return(nil, apperrors.ErrClaimAlreadyProcessed)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims/"+claimID.String()+"/approve", map[string]string{"centerId": suite.centerID.String()})

		env := testutils.AssertEnvelope(t, recorder, http.StatusConflict)
		assert.Equal(t, apperrors.ErrClaimAlreadyProcessed.Error(), env.Message)
	})

	suite.T().Run("NotPermitted", func(t *testing.T) {
		suite.mockService.EXPECT().
			ApproveClaim(gomock.Any(), coordinator, claimID, suite.centerID).
			Return(nil, apperrors.ErrNotPermitted)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims/"+claimID.String()+"/approve", map[string]string{"centerId": suite.centerID.String()})

		env := testutils.AssertEnvelope(t, recorder, http.StatusForbidden)
		assert.Equal(t, "not permitted", env.Message)
	})

	suite.T().Run("InvalidClaimID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims/not-a-uuid/approve", map[string]string{"centerId": suite.centerID.String()})

		env := testutils.AssertEnvelope(t, recorder, http.StatusBadRequest)
		assert.Contains(t, env.Errors, "id")
	})

	suite.T().Run("MissingCenterID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims/"+claimID.String()+"/approve", map[string]string{})

		env := testutils.AssertEnvelope(t, recorder, http.StatusBadRequest)
		assert.Contains(t, env.Errors, "centerId")
	})
}

// TestRejectClaim tests the RejectClaim handler
func (suite *ClaimHandlerTestSuite) TestRejectClaim() {
	registry := testutils.RegistryActor()
	suite.httpSuite.AsActor(registry)
	claimID := uuid.New()

	suite.mockService.EXPECT().
		RejectClaim(gomock.Any(), registry, claimID, suite.centerID).
		Return(nil, apperrors.ErrClaimNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/claims/"+claimID.String()+"/reject", map[string]string{"centerId": suite.centerID.String()})

	testutils.AssertEnvelope(suite.T(), recorder, http.StatusNotFound)
}

// TestGetClaim tests the GetClaim handler
func (suite *ClaimHandlerTestSuite) TestGetClaim() {
	coordinator := testutils.CoordinatorActor(suite.centerID)
	suite.httpSuite.AsActor(coordinator)
	expected := suite.claimResponse(models.ClaimStatusPending)
	expected.Actions = []claims.Action{claims.ActionApprove, claims.ActionReject}

	suite.mockService.EXPECT().GetClaim(gomock.Any(), coordinator, expected.ID).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/claims/"+expected.ID.String(), nil)

	env := testutils.AssertEnvelope(suite.T(), recorder, http.StatusOK)
	var got map[string]any
	testutils.DecodeData(suite.T(), env, &got)
	suite.Equal([]any{"approve", "reject"}, got["actions"])
	details := got["details"].(map[string]any)
	suite.Equal("09:00", details["startTime"])
}

// TestListClaims tests query parsing for ListClaims
func (suite *ClaimHandlerTestSuite) TestListClaims() {
	coordinator := testutils.CoordinatorActor(suite.centerID)
	suite.httpSuite.AsActor(coordinator)

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListClaims(gomock.Any(), coordinator, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Actor, req *service.ListClaimsRequest) (*service.ClaimListResponse, error) {
				assert.Equal(t, suite.centerID, *req.CenterID)
				assert.Equal(t, "PENDING", req.Status)
				assert.Equal(t, 2, req.Page)
				assert.Equal(t, 10, req.PageSize)
				return &service.ClaimListResponse{Claims: []service.ClaimResponse{}, Total: 0, Page: 2, PageSize: 10}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/claims?status=PENDING&page=2&pageSize=10&centerId="+suite.centerID.String(), nil)

		testutils.AssertEnvelope(t, recorder, http.StatusOK)
	})

	suite.T().Run("InvalidCenterID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/claims?centerId=abc", nil)

		testutils.AssertEnvelope(t, recorder, http.StatusBadRequest)
	})

	suite.T().Run("UnexpectedError", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListClaims(gomock.Any(), coordinator, gomock.Any()).
			Return(nil, errors.New("pq: connection refused"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/claims", nil)

		env := testutils.AssertEnvelope(t, recorder, http.StatusInternalServerError)
		assert.Equal(t, "an unexpected error occurred", env.Message)
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

// TestClaimHandlerTestSuite runs the test suite
func TestClaimHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}
