package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeyActor  = "actor"
	contextKeyClaims = "auth_claims"
)

// ActorLoader resolves the current roles and memberships of a user id
type ActorLoader interface {
	LoadActor(ctx context.Context, userID uuid.UUID) (*Actor, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	actors  ActorLoader
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, actors ActorLoader) *AuthMiddleware {
	return &AuthMiddleware{service: service, actors: actors}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

// RequireAuth validates the bearer token, then loads the actor from storage
// so role and center changes take effect without re-login.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		actor, err := m.actors.LoadActor(c, userID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				unauthorized(c, "User no longer exists")
				return
			}
			logger.WithContext(c).WithError(err).Error("failed to load actor")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "an unexpected error occurred"})
			return
		}

		c.Set(contextKeyActor, actor)
		c.Set(contextKeyClaims, claims)
		c.Set(logger.ContextKeyEmail, actor.Email)
		c.Set(logger.ContextKeyActorID, actor.ID.String())

		c.Next()
	}
}

// SetActor stores actor on the gin context
func SetActor(c *gin.Context, actor *Actor) {
	c.Set(contextKeyActor, actor)
}

// GetActor is a helper function to extract the authenticated actor from context
func GetActor(c *gin.Context) (*Actor, bool) {
	value, exists := c.Get(contextKeyActor)
	if !exists {
		return nil, false
	}

	actor, ok := value.(*Actor)
	return actor, ok && actor != nil
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(contextKeyClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
