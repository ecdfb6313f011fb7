package handlers

import (
	"context"
	"net/http"
	"strconv"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClaimHandler handles HTTP requests for claim operations
type ClaimHandler struct {
	claimService service.ClaimServiceInterface
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService service.ClaimServiceInterface) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// ReviewClaimRequest names the center a reviewed claim belongs to
type ReviewClaimRequest struct {
	CenterID string `json:"centerId" example:"7b7f3c1e-4f57-4b8e-9a55-3f0c2d8c1e11"`
}

// CreateClaim handles POST /claims
// @Summary Submit a claim
// @Description Submit a TEACHING, TRANSPORTATION or THESIS_PROJECT claim. The claimType field selects which other fields apply.
// @Tags claims
// @Accept json
// @Produce json
// @Param claim body object true "Claim payload with claimType discriminant"
// @Success 201 {object} Result{data=service.ClaimResponse} "Claim submitted"
// @Failure 400 {object} Result "Validation failed"
// @Failure 403 {object} Result "Not permitted"
// @Failure 409 {object} Result "Submitted too recently"
// @Security BearerAuth
// @Router /claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload map[string]any
	if !bindJSON(c, &payload) {
		return
	}

	claim, err := h.claimService.CreateClaim(c, actor, payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, claim)
}

// GetClaim handles GET /claims/:id
// @Summary Get claim by ID
// @Description Get a claim with its details and the review actions available to the caller
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Success 200 {object} Result{data=service.ClaimResponse} "Claim"
// @Failure 400 {object} Result "Invalid claim ID"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Claim not found"
// @Security BearerAuth
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	claim, err := h.claimService.GetClaim(c, actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, claim)
}

// ListClaims handles GET /claims
// @Summary List claims
// @Description List claims visible to the caller, newest first
// @Tags claims
// @Produce json
// @Param centerId query string false "Center ID (UUID)"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Param claimType query string false "TEACHING, TRANSPORTATION or THESIS_PROJECT"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} Result{data=service.ClaimListResponse} "Claims"
// @Failure 400 {object} Result "Invalid parameters"
// @Failure 403 {object} Result "Not permitted"
// @Security BearerAuth
// @Router /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	req := &service.ListClaimsRequest{
		Status:    c.Query("status"),
		ClaimType: c.Query("claimType"),
	}
	if raw := c.Query("centerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondValidation(c, "centerId", "must be a valid UUID")
			return
		}
		req.CenterID = &id
	}
	req.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	req.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	claims, err := h.claimService.ListClaims(c, actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, claims)
}

// ApproveClaim handles POST /claims/:id/approve
// @Summary Approve a claim
// @Description Approve a pending claim. Only the coordinator of the claim's center or registry may approve.
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Param request body ReviewClaimRequest true "Center of the claim"
// @Success 200 {object} Result{data=service.ClaimResponse} "Claim approved"
// @Failure 400 {object} Result "Invalid request"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Claim not found"
// @Failure 409 {object} Result "Claim already processed"
// @Security BearerAuth
// @Router /claims/{id}/approve [post]
func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	h.review(c, h.claimService.ApproveClaim)
}

// RejectClaim handles POST /claims/:id/reject
// @Summary Reject a claim
// @Description Reject a pending claim. Only the coordinator of the claim's center or registry may reject.
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID (UUID)"
// @Param request body ReviewClaimRequest true "Center of the claim"
// @Success 200 {object} Result{data=service.ClaimResponse} "Claim rejected"
// @Failure 400 {object} Result "Invalid request"
// @Failure 403 {object} Result "Not permitted"
// @Failure 404 {object} Result "Claim not found"
// @Failure 409 {object} Result "Claim already processed"
// @Security BearerAuth
// @Router /claims/{id}/reject [post]
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	h.review(c, h.claimService.RejectClaim)
}

type reviewFunc func(ctx context.Context, actor *auth.Actor, claimID, centerID uuid.UUID) (*service.ClaimResponse, error)

func (h *ClaimHandler) review(c *gin.Context, do reviewFunc) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	claimID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req ReviewClaimRequest
	if !bindJSON(c, &req) {
		return
	}
	centerID, err := uuid.Parse(req.CenterID)
	if err != nil {
		respondValidation(c, "centerId", "must be a valid UUID")
		return
	}

	claim, err := do(c, actor, claimID, centerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, claim)
}
