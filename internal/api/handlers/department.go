package handlers

import (
	"net/http"

	"claims-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for departments of a center
type DepartmentHandler struct {
	departmentService service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(departmentService service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// CreateDepartment handles POST /centers/:id/departments
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param department body service.DepartmentRequest true "Department data"
// @Success 201 {object} Result{data=service.DepartmentResponse} "Department created"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Center not found"
// @Failure 409 {object} Result "Name taken in this center"
// @Security BearerAuth
// @Router /centers/{id}/departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := h.departmentService.CreateDepartment(c, actor, centerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, department)
}

// ListDepartments handles GET /centers/:id/departments
// @Summary List departments of a center
// @Tags departments
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Success 200 {object} Result{data=[]service.DepartmentResponse} "Departments ordered by name"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Center not found"
// @Security BearerAuth
// @Router /centers/{id}/departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	departments, err := h.departmentService.ListDepartments(c, actor, centerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, departments)
}

// UpdateDepartment handles PUT /centers/:id/departments/:departmentId
// @Summary Rename a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param departmentId path string true "Department ID (UUID)"
// @Param department body service.DepartmentRequest true "New name"
// @Success 200 {object} Result{data=service.DepartmentResponse} "Department renamed"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Department not found in this center"
// @Failure 409 {object} Result "Name taken in this center"
// @Security BearerAuth
// @Router /centers/{id}/departments/{departmentId} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	departmentID, ok := parseUUIDParam(c, "departmentId")
	if !ok {
		return
	}

	var req service.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := h.departmentService.UpdateDepartment(c, actor, centerID, departmentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, department)
}

// DeleteDepartment handles DELETE /centers/:id/departments/:departmentId
// @Summary Delete a department
// @Description Delete a department. Its lecturers stay in the center without a department.
// @Tags departments
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param departmentId path string true "Department ID (UUID)"
// @Success 200 {object} Result "Department deleted"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Department not found in this center"
// @Security BearerAuth
// @Router /centers/{id}/departments/{departmentId} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	departmentID, ok := parseUUIDParam(c, "departmentId")
	if !ok {
		return
	}

	if err := h.departmentService.DeleteDepartment(c, actor, centerID, departmentID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "department deleted")
}
