package handlers

import (
	"net/http"

	"claims-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles lecturer membership and coordinator changes
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// AddLecturer handles PUT /centers/:id/lecturers/:lecturerId
// @Summary Add a lecturer to a center
// @Tags assignments
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param lecturerId path string true "Lecturer ID (UUID)"
// @Success 200 {object} Result "Lecturer added"
// @Failure 400 {object} Result "User is not a lecturer"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Lecturer or center not found"
// @Failure 409 {object} Result "Lecturer belongs to another center"
// @Security BearerAuth
// @Router /centers/{id}/lecturers/{lecturerId} [put]
func (h *AssignmentHandler) AddLecturer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	lecturerID, ok := parseUUIDParam(c, "lecturerId")
	if !ok {
		return
	}

	if err := h.assignmentService.AddLecturerToCenter(c, actor, centerID, lecturerID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "lecturer added to center")
}

// RemoveLecturer handles DELETE /centers/:id/lecturers/:lecturerId
// @Summary Remove a lecturer from a center
// @Tags assignments
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param lecturerId path string true "Lecturer ID (UUID)"
// @Success 200 {object} Result "Lecturer removed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Lecturer not found in this center"
// @Security BearerAuth
// @Router /centers/{id}/lecturers/{lecturerId} [delete]
func (h *AssignmentHandler) RemoveLecturer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	lecturerID, ok := parseUUIDParam(c, "lecturerId")
	if !ok {
		return
	}

	if err := h.assignmentService.RemoveLecturerFromCenter(c, actor, centerID, lecturerID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "lecturer removed from center")
}

// AssignDepartment handles PUT /centers/:id/lecturers/:lecturerId/department
// @Summary Assign a lecturer to a department
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param lecturerId path string true "Lecturer ID (UUID)"
// @Param request body service.AssignDepartmentRequest true "Department"
// @Success 200 {object} Result "Lecturer assigned"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Lecturer or department not found in this center"
// @Security BearerAuth
// @Router /centers/{id}/lecturers/{lecturerId}/department [put]
func (h *AssignmentHandler) AssignDepartment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	lecturerID, ok := parseUUIDParam(c, "lecturerId")
	if !ok {
		return
	}

	var req service.AssignDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.assignmentService.AssignLecturerToDepartment(c, actor, centerID, req.DepartmentID, lecturerID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "lecturer assigned to department")
}

// UnassignDepartment handles DELETE /centers/:id/lecturers/:lecturerId/department
// @Summary Clear the department of a lecturer
// @Tags assignments
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param lecturerId path string true "Lecturer ID (UUID)"
// @Success 200 {object} Result "Lecturer unassigned"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Lecturer not found in this center"
// @Security BearerAuth
// @Router /centers/{id}/lecturers/{lecturerId}/department [delete]
func (h *AssignmentHandler) UnassignDepartment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	lecturerID, ok := parseUUIDParam(c, "lecturerId")
	if !ok {
		return
	}

	if err := h.assignmentService.UnassignLecturerFromDepartment(c, actor, centerID, lecturerID); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "lecturer unassigned from department")
}

// BulkAssign handles POST /centers/:id/lecturers/bulk-assign
// @Summary Assign many lecturers to departments
// @Description Items are processed independently; the result lists successes and failures.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param request body service.BulkAssignRequest true "Assignments"
// @Success 200 {object} Result{data=service.BatchResult} "Per-item outcome"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Security BearerAuth
// @Router /centers/{id}/lecturers/bulk-assign [post]
func (h *AssignmentHandler) BulkAssign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.BulkAssignRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.assignmentService.BulkAssignLecturers(c, actor, centerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result)
}

// BulkUnassign handles POST /centers/:id/lecturers/bulk-unassign
// @Summary Clear the department of many lecturers
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param request body service.BulkUnassignRequest true "Lecturers"
// @Success 200 {object} Result{data=service.BatchResult} "Per-item outcome"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Security BearerAuth
// @Router /centers/{id}/lecturers/bulk-unassign [post]
func (h *AssignmentHandler) BulkUnassign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.BulkUnassignRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.assignmentService.BulkUnassignLecturers(c, actor, centerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result)
}

// ChangeCoordinator handles PUT /centers/:id/coordinator
// @Summary Change the coordinator of a center
// @Description The new coordinator must hold no other center; the previous one is left without a center.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Center ID (UUID)"
// @Param request body service.ChangeCoordinatorRequest true "New coordinator"
// @Success 200 {object} Result{data=service.CenterResponse} "Coordinator changed"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Center or user not found"
// @Failure 409 {object} Result "Coordinator already assigned"
// @Security BearerAuth
// @Router /centers/{id}/coordinator [put]
func (h *AssignmentHandler) ChangeCoordinator(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	centerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ChangeCoordinatorRequest
	if !bindJSON(c, &req) {
		return
	}

	center, err := h.assignmentService.ChangeCenterCoordinator(c, actor, centerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, center)
}
