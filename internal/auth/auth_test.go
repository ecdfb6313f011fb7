package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeActorLoader struct {
	actors map[uuid.UUID]*Actor
}

func (f *fakeActorLoader) LoadActor(_ context.Context, id uuid.UUID) (*Actor, error) {
	if a, ok := f.actors[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func newTestService(t *testing.T, repo UserRepository) *AuthService {
	t.Helper()
	service, err := NewAuthService(NewAuthConfig("test-signing-key", time.Hour), repo)
	require.NoError(t, err)
	return service
}

func newTestUser(t *testing.T, email, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	u := &models.User{Email: email, PasswordHash: hash, Role: role}
	u.ID = uuid.New()
	return u
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := NewAuthConfig("secret", 0)
		assert.NoError(t, config.ValidateConfig())
		assert.Equal(t, time.Hour, config.TokenTTL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := NewAuthConfig("", time.Minute).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing issuer", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret", TokenTTL: time.Minute}
		assert.Error(t, config.ValidateConfig())
	})
}

func TestJWTOperations(t *testing.T) {
	service := newTestService(t, nil)
	user := newTestUser(t, "jane@example.com", "pw", models.RoleCoordinator)

	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleCoordinator, claims.Role)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)

	other, err := NewAuthService(NewAuthConfig("another-key", time.Hour), nil)
	require.NoError(t, err)
	_, err = other.ValidateJWT(token)
	assert.Error(t, err, "token signed with a different key must be rejected")
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "S3cret"))
}

func TestLogin(t *testing.T) {
	user := newTestUser(t, "lecturer@example.com", "correct horse", models.RoleLecturer)
	service := newTestService(t, &fakeUserRepo{users: map[string]*models.User{user.Email: user}})

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := service.Login(context.Background(), &LoginRequest{Email: " Lecturer@Example.com ", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.Equal(t, user.ID, resp.Profile.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), &LoginRequest{Email: user.Email, Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), &LoginRequest{Email: "ghost@example.com", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := newTestUser(t, "coord@example.com", "pw", models.RoleCoordinator)
	centerID := uuid.New()
	actor := &Actor{ID: user.ID, Email: user.Email, Role: user.Role, CoordinatedCenterID: &centerID}

	service := newTestService(t, nil)
	middleware := NewAuthMiddleware(service, &fakeActorLoader{actors: map[uuid.UUID]*Actor{user.ID: actor}})

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		got, ok := GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": got.ID.String(), "email": c.GetString("email")})
	})

	token, err := service.GenerateJWT(user)
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token loads actor", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.ID.String(), body["id"])
		assert.Equal(t, user.Email, body["email"])
	})

	t.Run("deleted user", func(t *testing.T) {
		ghost := newTestUser(t, "ghost@example.com", "pw", models.RoleLecturer)
		ghostToken, err := service.GenerateJWT(ghost)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+ghostToken)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
