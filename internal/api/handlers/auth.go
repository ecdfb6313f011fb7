package handlers

import (
	"context"
	"net/http"
	"strings"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Authenticator exchanges credentials for an access token
type Authenticator interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
}

// AuthHandler handles login and the caller's own profile
type AuthHandler struct {
	authenticator Authenticator
	userService   service.UserServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authenticator Authenticator, userService service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		userService:   userService,
	}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.LoginRequest true "Credentials"
// @Success 200 {object} Result{data=auth.LoginResponse} "Token issued"
// @Failure 400 {object} Result "Validation failed"
// @Failure 401 {object} Result "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondValidation(c, "email", "is required")
		return
	}
	if req.Password == "" {
		respondValidation(c, "password", "is required")
		return
	}

	resp, err := h.authenticator.Login(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, resp)
}

// Me handles GET /me
// @Summary Current user
// @Description Get the caller's own record and the center they coordinate, if any
// @Tags auth
// @Produce json
// @Success 200 {object} Result{data=service.ProfileResponse} "Profile"
// @Failure 401 {object} Result "Not authenticated"
// @Security BearerAuth
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, profile)
}
