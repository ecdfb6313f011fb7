package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the JSON result envelope returned by every endpoint
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
	actor  *auth.Actor
}

// SetupHTTPTest initializes Gin for testing. Routes registered on Router see
// the actor set with AsActor, standing in for the auth middleware.
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	s := &HTTPTestSuite{Router: gin.New()}
	s.Router.Use(func(c *gin.Context) {
		if s.actor != nil {
			auth.SetActor(c, s.actor)
			c.Set("email", s.actor.Email)
		}
		c.Next()
	})
	return s
}

// AsActor makes subsequent requests run as actor; nil means anonymous
func (suite *HTTPTestSuite) AsActor(actor *auth.Actor) {
	suite.actor = actor
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// RegistryActor returns a registry actor with a fresh id
func RegistryActor() *auth.Actor {
	return &auth.Actor{ID: uuid.New(), Email: "registry@test.com", Role: models.RoleRegistry}
}

// CoordinatorActor returns the coordinator of centerID
func CoordinatorActor(centerID uuid.UUID) *auth.Actor {
	return &auth.Actor{ID: uuid.New(), Email: "coordinator@test.com", Role: models.RoleCoordinator, CoordinatedCenterID: &centerID}
}

// LecturerActor returns a lecturer of centerID
func LecturerActor(centerID uuid.UUID) *auth.Actor {
	return &auth.Actor{ID: uuid.New(), Email: "lecturer@test.com", Role: models.RoleLecturer, LecturerCenterID: &centerID}
}

// AssertEnvelope asserts the status code and decodes the result envelope
func AssertEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) Envelope {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	assert.Equal(t, expectedStatus < 400, env.Success)
	return env
}

// DecodeData unmarshals the envelope data into target
func DecodeData(t *testing.T, env Envelope, target interface{}) {
	t.Helper()
	require.NotEmpty(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, target))
}
