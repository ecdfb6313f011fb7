package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"claims-portal-backend/internal/api/middleware"
	"claims-portal-backend/internal/api/routes"
	"claims-portal-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-signing-key",
		JWTTTLMinutes:              60,
		AllowedOrigins:             []string{"http://localhost:3000"},
		ClaimSubmitCooldownSeconds: 0,
		BulkMaxItems:               10,
	}
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := routes.SetupRoutes(routes.Dependencies{}, testConfig())
	require.NoError(t, err)
	return router
}

func TestSetupRoutes_ProtectedRequireToken(t *testing.T) {
	router := setupRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/me"},
		{http.MethodPost, "/api/v1/claims"},
		{http.MethodPost, "/api/v1/claims/00000000-0000-0000-0000-000000000001/approve"},
		{http.MethodGet, "/api/v1/centers"},
		{http.MethodPut, "/api/v1/centers/00000000-0000-0000-0000-000000000001/lecturers/00000000-0000-0000-0000-000000000002/department"},
		{http.MethodPost, "/api/v1/centers/00000000-0000-0000-0000-000000000001/lecturers/bulk-assign"},
		{http.MethodDelete, "/api/v1/users/00000000-0000-0000-0000-000000000001"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestSetupRoutes_Public(t *testing.T) {
	router := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetupRoutes_Preflight(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/claims", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
