package handlers

import (
	"net/http"
	"strconv"

	"claims-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CenterHandler handles HTTP requests for center operations
type CenterHandler struct {
	centerService service.CenterServiceInterface
}

// NewCenterHandler creates a new center handler
func NewCenterHandler(centerService service.CenterServiceInterface) *CenterHandler {
	return &CenterHandler{
		centerService: centerService,
	}
}

// CreateCenter handles POST /centers
// @Summary Create a new center
// @Description Create a center coordinated by an existing coordinator that holds no other center
// @Tags centers
// @Accept json
// @Produce json
// @Param center body service.CreateCenterRequest true "Center data"
// @Success 201 {object} Result{data=service.CenterResponse} "Center created"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Coordinator not found"
// @Failure 409 {object} Result "Name taken or coordinator already assigned"
// @Security BearerAuth
// @Router /centers [post]
func (h *CenterHandler) CreateCenter(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateCenterRequest
	if !bindJSON(c, &req) {
		return
	}

	center, err := h.centerService.CreateCenter(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, center)
}

// GetCenter handles GET /centers/:id
// @Summary Get center by ID
// @Description Get a center with its departments and lecturers
// @Tags centers
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Success 200 {object} Result{data=service.CenterDetailResponse} "Center"
// @Failure 400 {object} Result "Invalid center ID"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Center not found"
// @Security BearerAuth
// @Router /centers/{id} [get]
func (h *CenterHandler) GetCenter(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	center, err := h.centerService.GetCenter(c, actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, center)
}

// ListCenters handles GET /centers
// @Summary List centers
// @Description Registry sees every center; a coordinator sees the center they coordinate
// @Tags centers
// @Produce json
// @Param limit query int false "Maximum number of centers" default(20)
// @Param offset query int false "Number of centers to skip" default(0)
// @Success 200 {object} Result{data=PagedData{items=[]service.CenterResponse}} "Centers"
// @Failure 403 {object} Result "Not permitted"
// @Security BearerAuth
// @Router /centers [get]
func (h *CenterHandler) ListCenters(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	centers, total, err := h.centerService.ListCenters(c, actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, PagedData{Items: centers, Total: total, Limit: limit, Offset: offset})
}

// UpdateCenterName handles PUT /centers/:id/name
// @Summary Rename a center
// @Tags centers
// @Accept json
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param request body service.UpdateCenterNameRequest true "New name"
// @Success 200 {object} Result{data=service.CenterResponse} "Center renamed"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Center not found"
// @Failure 409 {object} Result "Name taken"
// @Security BearerAuth
// @Router /centers/{id}/name [put]
func (h *CenterHandler) UpdateCenterName(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCenterNameRequest
	if !bindJSON(c, &req) {
		return
	}

	center, err := h.centerService.UpdateCenterName(c, actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, center)
}

// DeleteCenter handles DELETE /centers/:id
// @Summary Delete a center
// @Description Delete a center that has no claims. Its lecturers are released and its departments removed.
// @Tags centers
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Success 200 {object} Result "Center deleted"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Center not found"
// @Failure 409 {object} Result "Center has claims"
// @Security BearerAuth
// @Router /centers/{id} [delete]
func (h *CenterHandler) DeleteCenter(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.centerService.DeleteCenter(c, actor, id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "center deleted")
}
