package handlers

import (
	"net/http"
	"strconv"

	"claims-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for the user directory
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description Create a user with local credentials. Emails are stored lowercased.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} Result{data=service.UserResponse} "User created"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 409 {object} Result "Email taken"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, user)
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Result{data=service.UserResponse} "User"
// @Failure 400 {object} Result "Invalid user ID"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c, actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, user)
}

// ListUsers handles GET /users
// @Summary List users
// @Description Registry sees everyone. Coordinators see lecturers of their center, or unaffiliated lecturers with unaffiliated=true.
// @Tags users
// @Produce json
// @Param role query string false "REGISTRY, COORDINATOR or LECTURER"
// @Param centerId query string false "Center ID (UUID)"
// @Param unaffiliated query bool false "Only lecturers without a center"
// @Param limit query int false "Maximum number of users" default(20)
// @Param offset query int false "Number of users to skip" default(0)
// @Success 200 {object} Result{data=PagedData{items=[]service.UserResponse}} "Users"
// @Failure 400 {object} Result "Invalid parameters"
// @Failure 403 {object} Result "Not permitted"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	req := &service.ListUsersRequest{Role: c.Query("role")}
	if raw := c.Query("centerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondValidation(c, "centerId", "must be a valid UUID")
			return
		}
		req.CenterID = &id
	}
	req.Unaffiliated, _ = strconv.ParseBool(c.DefaultQuery("unaffiliated", "false"))
	req.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	req.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, total, err := h.userService.ListUsers(c, actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, PagedData{Items: users, Total: total, Limit: req.Limit, Offset: req.Offset})
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Description Users still coordinating a center or referenced by claims cannot be deleted
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Result "User deleted"
// @Failure 400 {object} Result "Cannot delete yourself"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "User not found"
// @Failure 409 {object} Result "User in use"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c, actor, id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "user deleted")
}
