package claims

import (
	"fmt"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"
)

// Action is a reviewer decision on a pending claim
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Target returns the status an action moves a claim into
func (a Action) Target() (models.ClaimStatus, error) {
	switch a {
	case ActionApprove:
		return models.ClaimStatusApproved, nil
	case ActionReject:
		return models.ClaimStatusRejected, nil
	}
	return "", fmt.Errorf("unknown claim action %q", a)
}

// Transition applies action to a claim currently in from. Only PENDING claims
// move; terminal states answer ErrClaimAlreadyProcessed.
func Transition(from models.ClaimStatus, action Action) (models.ClaimStatus, error) {
	to, err := action.Target()
	if err != nil {
		return "", err
	}
	if from != models.ClaimStatusPending {
		return "", apperrors.ErrClaimAlreadyProcessed
	}
	return to, nil
}
