package handlers

import (
	"net/http"

	"claims-portal-backend/internal/auth"
	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const unexpectedErrorMessage = "an unexpected error occurred"

// Result is the envelope every endpoint answers with
type Result struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// PagedData wraps a list with its total count
type PagedData struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Result{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Result{Success: status < http.StatusBadRequest, Message: message})
}

func respondValidation(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, Result{
		Message: "validation failed",
		Errors:  map[string]string{field: message},
	})
}

// respondError maps an error kind to its status code. Unknown errors are
// logged and never leak their text.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, Result{Message: "validation failed", Errors: apperrors.ValidationFields(err)})
	case apperrors.IsAuthentication(err):
		respondMessage(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondMessage(c, http.StatusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		respondMessage(c, http.StatusNotFound, err.Error())
	case apperrors.IsConflict(err):
		respondMessage(c, http.StatusConflict, err.Error())
	default:
		logger.WithContext(c).WithError(err).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		respondMessage(c, http.StatusInternalServerError, unexpectedErrorMessage)
	}
}

// currentActor returns the authenticated actor or answers 401
func currentActor(c *gin.Context) (*auth.Actor, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		respondError(c, apperrors.ErrMissingActor)
		return nil, false
	}
	return actor, true
}

// parseUUIDParam reads a path parameter as a UUID, answering 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondValidation(c, name, "must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidation(c, "body", "invalid request body: "+err.Error())
		return false
	}
	return true
}
