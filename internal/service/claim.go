package service

import (
	"context"
	"fmt"
	"time"

	"claims-portal-backend/internal/auth"
	"claims-portal-backend/internal/claims"
	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"
	"claims-portal-backend/internal/logger"
	"claims-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Routing keys of claim lifecycle events
const (
	EventClaimSubmitted = "claim.submitted"
	EventClaimApproved  = "claim.approved"
	EventClaimRejected  = "claim.rejected"
)

// ClaimService handles submission, review and reads of claims
type ClaimService struct {
	repo      repository.ClaimRepositoryInterface
	validator *validator.Validate
	publisher EventPublisher
	limiter   SubmissionLimiter
	now       func() time.Time
}

// NewClaimService creates a new claim service. publisher and limiter may be nil.
func NewClaimService(repo repository.ClaimRepositoryInterface, validator *validator.Validate, publisher EventPublisher, limiter SubmissionLimiter) *ClaimService {
	return &ClaimService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		limiter:   limiter,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ClaimResponse represents a claim with its type-specific details
type ClaimResponse struct {
	ID            uuid.UUID          `json:"id"`
	ClaimType     models.ClaimType   `json:"claimType"`
	Status        models.ClaimStatus `json:"status"`
	SubmittedByID uuid.UUID          `json:"submittedById"`
	CenterID      uuid.UUID          `json:"centerId"`
	SubmittedAt   time.Time          `json:"submittedAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	ProcessedAt   *time.Time         `json:"processedAt,omitempty"`
	ProcessedByID *uuid.UUID         `json:"processedById,omitempty"`
	Description   *string            `json:"description,omitempty"`
	Details       claims.Details     `json:"details" swaggertype:"object"`
	// Actions lists the review actions the caller may take right now
	Actions []claims.Action `json:"actions,omitempty"`
}

// ListClaimsRequest holds the claim list filters
type ListClaimsRequest struct {
	CenterID  *uuid.UUID `json:"centerId"`
	Status    string     `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	ClaimType string     `json:"claimType" validate:"omitempty,oneof=TEACHING TRANSPORTATION THESIS_PROJECT"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
}

// ClaimListResponse is one page of claims
type ClaimListResponse struct {
	Claims   []ClaimResponse `json:"claims"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// ClaimEvent is the message published on every lifecycle change
type ClaimEvent struct {
	Event      string             `json:"event"`
	ClaimID    uuid.UUID          `json:"claimId"`
	CenterID   uuid.UUID          `json:"centerId"`
	ClaimType  models.ClaimType   `json:"claimType"`
	Status     models.ClaimStatus `json:"status"`
	ActorID    uuid.UUID          `json:"actorId"`
	OccurredAt time.Time          `json:"occurredAt"`
}

// CreateClaim validates payload and stores it as a PENDING claim of the
// lecturer's center. A centerId in the payload must name that center.
func (s *ClaimService) CreateClaim(ctx context.Context, actor *auth.Actor, payload map[string]any) (*ClaimResponse, error) {
	centerID := submissionCenter(actor, payload)
	if err := authorize(ctx, auth.OpSubmitClaim, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}

	validated, err := claims.Validate(payload)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, actor.ID, ActionSubmitClaim)
		if err != nil {
			// limiter outages do not block submissions
			logger.WithContext(ctx).WithError(err).Warn("rate limit check failed")
		} else if !allowed {
			return nil, apperrors.ErrClaimSubmissionThrottled
		}
	}

	claim := &models.Claim{
		ClaimType:     validated.ClaimType(),
		SubmittedByID: actor.ID,
		CenterID:      centerID,
		Status:        models.ClaimStatusPending,
	}
	if err := validated.ApplyTo(claim); err != nil {
		return nil, fmt.Errorf("failed to map claim: %w", err)
	}

	if err := s.repo.Create(ctx, claim); err != nil {
		if s.limiter != nil {
			if clearErr := s.limiter.Clear(ctx, actor.ID, ActionSubmitClaim); clearErr != nil {
				logger.WithContext(ctx).WithError(clearErr).Warn("failed to release rate limit")
			}
		}
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	logger.WithContext(ctx).WithOperation(string(auth.OpSubmitClaim)).WithFields(map[string]interface{}{
		"claim_id":   claim.ID,
		"claim_type": claim.ClaimType,
	}).Info("claim submitted")
	s.publish(ctx, EventClaimSubmitted, claim, actor.ID)

	return toClaimResponse(claim, nil)
}

// ApproveClaim moves a pending claim of centerID to APPROVED
func (s *ClaimService) ApproveClaim(ctx context.Context, actor *auth.Actor, claimID, centerID uuid.UUID) (*ClaimResponse, error) {
	return s.review(ctx, actor, claimID, centerID, claims.ActionApprove)
}

// RejectClaim moves a pending claim of centerID to REJECTED
func (s *ClaimService) RejectClaim(ctx context.Context, actor *auth.Actor, claimID, centerID uuid.UUID) (*ClaimResponse, error) {
	return s.review(ctx, actor, claimID, centerID, claims.ActionReject)
}

func (s *ClaimService) review(ctx context.Context, actor *auth.Actor, claimID, centerID uuid.UUID, action claims.Action) (*ClaimResponse, error) {
	op, event := auth.OpApproveClaim, EventClaimApproved
	if action == claims.ActionReject {
		op, event = auth.OpRejectClaim, EventClaimRejected
	}

	if err := authorize(ctx, op, actor, auth.Target{CenterID: centerID}); err != nil {
		return nil, err
	}

	status, err := action.Target()
	if err != nil {
		return nil, err
	}

	claim, err := s.repo.TransitionStatus(ctx, claimID, centerID, status, actor.ID, s.now())
	if err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to %s claim: %w", action, err)
	}

	logger.WithContext(ctx).WithOperation(string(op)).WithField("claim_id", claim.ID).Info("claim processed")
	s.publish(ctx, event, claim, actor.ID)

	return toClaimResponse(claim, nil)
}

// GetClaim returns a claim visible to actor. Callers without registry rights
// get "not permitted" for both missing and foreign claims.
func (s *ClaimService) GetClaim(ctx context.Context, actor *auth.Actor, claimID uuid.UUID) (*ClaimResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrNotPermitted
	}

	claim, err := s.repo.GetByID(ctx, claimID)
	if err != nil {
		if apperrors.IsNotFound(err) && !actor.IsRegistry() {
			return nil, apperrors.ErrNotPermitted
		}
		return nil, err
	}

	target := auth.Target{CenterID: claim.CenterID, SubmitterID: claim.SubmittedByID}
	if err := authorize(ctx, auth.OpViewClaim, actor, target); err != nil {
		return nil, err
	}

	return toClaimResponse(claim, availableActions(actor, claim))
}

// ListClaims returns claims visible to actor, newest first. Lecturers only
// ever see their own claims; coordinators only their center's.
func (s *ClaimService) ListClaims(ctx context.Context, actor *auth.Actor, req *ListClaimsRequest) (*ClaimListResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrNotPermitted
	}
	if req == nil {
		req = &ListClaimsRequest{}
	}

	var target auth.Target
	var filter repository.ClaimFilter
	switch actor.Role {
	case models.RoleRegistry:
		filter.CenterID = req.CenterID
	case models.RoleCoordinator:
		if req.CenterID != nil {
			target.CenterID = *req.CenterID
		} else if actor.CoordinatedCenterID != nil {
			target.CenterID = *actor.CoordinatedCenterID
		}
		filter.CenterID = &target.CenterID
	default:
		target.SubmitterID = actor.ID
		filter.SubmittedByID = &actor.ID
		filter.CenterID = req.CenterID
	}

	if err := authorize(ctx, auth.OpListClaims, actor, target); err != nil {
		return nil, err
	}

	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Status != "" {
		status := models.ClaimStatus(req.Status)
		filter.Status = &status
	}
	if req.ClaimType != "" {
		claimType := models.ClaimType(req.ClaimType)
		filter.ClaimType = &claimType
	}

	page, pageSize, limit, offset := normalizePage(req.Page, req.PageSize)
	rows, total, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	out := &ClaimListResponse{
		Claims:   make([]ClaimResponse, 0, len(rows)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range rows {
		resp, err := toClaimResponse(&rows[i], nil)
		if err != nil {
			return nil, err
		}
		out.Claims = append(out.Claims, *resp)
	}
	return out, nil
}

func (s *ClaimService) publish(ctx context.Context, event string, claim *models.Claim, actorID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	msg := ClaimEvent{
		Event:      event,
		ClaimID:    claim.ID,
		CenterID:   claim.CenterID,
		ClaimType:  claim.ClaimType,
		Status:     claim.Status,
		ActorID:    actorID,
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishJSON(ctx, event, msg); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("event", event).Warn("failed to publish claim event")
	}
}

// submissionCenter is the center a claim is filed under: the payload's
// centerId when it parses, otherwise the lecturer's own center.
func submissionCenter(actor *auth.Actor, payload map[string]any) uuid.UUID {
	if raw, ok := payload["centerId"].(string); ok && raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil
		}
		return id
	}
	if actor != nil && actor.LecturerCenterID != nil {
		return *actor.LecturerCenterID
	}
	return uuid.Nil
}

func availableActions(actor *auth.Actor, claim *models.Claim) []claims.Action {
	var out []claims.Action
	for _, action := range []claims.Action{claims.ActionApprove, claims.ActionReject} {
		op := auth.OpApproveClaim
		if action == claims.ActionReject {
			op = auth.OpRejectClaim
		}
		if _, err := claims.Transition(claim.Status, action); err != nil {
			continue
		}
		if auth.Authorize(op, actor, auth.Target{CenterID: claim.CenterID}).Allowed {
			out = append(out, action)
		}
	}
	return out
}

func toClaimResponse(c *models.Claim, actions []claims.Action) (*ClaimResponse, error) {
	details, err := claims.FromModel(c)
	if err != nil {
		return nil, err
	}
	return &ClaimResponse{
		ID:            c.ID,
		ClaimType:     c.ClaimType,
		Status:        c.Status,
		SubmittedByID: c.SubmittedByID,
		CenterID:      c.CenterID,
		SubmittedAt:   c.SubmittedAt,
		UpdatedAt:     c.UpdatedAt,
		ProcessedAt:   c.ProcessedAt,
		ProcessedByID: c.ProcessedByID,
		Description:   c.Description,
		Details:       details,
		Actions:       actions,
	}, nil
}
