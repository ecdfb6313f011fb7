package auth

import (
	"testing"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type guardFixture struct {
	centerA, centerB uuid.UUID
	registry         *Actor
	coordinatorA     *Actor
	lecturerA        *Actor
	lecturerB        *Actor
}

func newGuardFixture() guardFixture {
	f := guardFixture{centerA: uuid.New(), centerB: uuid.New()}
	a, b := f.centerA, f.centerB
	f.registry = &Actor{ID: uuid.New(), Role: models.RoleRegistry}
	f.coordinatorA = &Actor{ID: uuid.New(), Role: models.RoleCoordinator, CoordinatedCenterID: &a}
	f.lecturerA = &Actor{ID: uuid.New(), Role: models.RoleLecturer, LecturerCenterID: &a}
	f.lecturerB = &Actor{ID: uuid.New(), Role: models.RoleLecturer, LecturerCenterID: &b}
	return f
}

func TestAuthorize_Policy(t *testing.T) {
	f := newGuardFixture()

	tests := []struct {
		name    string
		op      Operation
		actor   *Actor
		target  Target
		allowed bool
	}{
		{"lecturer submits to own center", OpSubmitClaim, f.lecturerA, Target{CenterID: f.centerA}, true},
		{"lecturer submits to other center", OpSubmitClaim, f.lecturerA, Target{CenterID: f.centerB}, false},
		{"coordinator cannot submit", OpSubmitClaim, f.coordinatorA, Target{CenterID: f.centerA}, false},
		{"registry cannot submit", OpSubmitClaim, f.registry, Target{CenterID: f.centerA}, false},

		{"coordinator approves own center", OpApproveClaim, f.coordinatorA, Target{CenterID: f.centerA}, true},
		{"coordinator approves other center", OpApproveClaim, f.coordinatorA, Target{CenterID: f.centerB}, false},
		{"registry approves anywhere", OpApproveClaim, f.registry, Target{CenterID: f.centerB}, true},
		{"lecturer approves", OpApproveClaim, f.lecturerA, Target{CenterID: f.centerA}, false},
		{"lecturer rejects", OpRejectClaim, f.lecturerA, Target{CenterID: f.centerA}, false},

		{"submitter views claim", OpViewClaim, f.lecturerA, Target{CenterID: f.centerA, SubmitterID: f.lecturerA.ID}, true},
		{"colleague views claim", OpViewClaim, f.lecturerA, Target{CenterID: f.centerA, SubmitterID: uuid.New()}, false},
		{"coordinator views own center claim", OpViewClaim, f.coordinatorA, Target{CenterID: f.centerA, SubmitterID: uuid.New()}, true},

		{"lecturer lists own claims", OpListClaims, f.lecturerA, Target{SubmitterID: f.lecturerA.ID}, true},
		{"lecturer lists center claims", OpListClaims, f.lecturerA, Target{CenterID: f.centerA}, false},
		{"coordinator lists own center", OpListClaims, f.coordinatorA, Target{CenterID: f.centerA}, true},
		{"coordinator lists all centers", OpListClaims, f.coordinatorA, Target{}, false},
		{"registry lists all centers", OpListClaims, f.registry, Target{}, true},

		{"coordinator renames own department", OpRenameDepartment, f.coordinatorA, Target{CenterID: f.centerA}, true},
		{"coordinator deletes foreign department", OpDeleteDepartment, f.coordinatorA, Target{CenterID: f.centerB}, false},
		{"registry assigns lecturer", OpAssignLecturer, f.registry, Target{CenterID: f.centerB}, true},
		{"lecturer unassigns", OpUnassignLecturer, f.lecturerA, Target{CenterID: f.centerA}, false},

		{"coordinator renames own center", OpRenameCenter, f.coordinatorA, Target{CenterID: f.centerA}, false},
		{"registry renames center", OpRenameCenter, f.registry, Target{CenterID: f.centerA}, true},
		{"coordinator changes coordinator", OpChangeCenterCoordinator, f.coordinatorA, Target{CenterID: f.centerA}, false},
		{"registry changes coordinator", OpChangeCenterCoordinator, f.registry, Target{CenterID: f.centerA}, true},

		{"user views self", OpViewDirectory, f.lecturerB, Target{UserID: f.lecturerB.ID}, true},
		{"user views another", OpViewDirectory, f.lecturerB, Target{UserID: f.lecturerA.ID}, false},
		{"coordinator views own lecturer", OpViewDirectory, f.coordinatorA, Target{UserID: f.lecturerA.ID, CenterID: f.centerA}, true},
		{"registry lists directory", OpViewDirectory, f.registry, Target{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.op, tt.actor, tt.target)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, DenyReason, d.Reason)
				assert.ErrorIs(t, d.Err(), apperrors.ErrNotPermitted)
			} else {
				assert.NoError(t, d.Err())
			}
		})
	}
}

func TestAuthorize_DeniesWithoutActor(t *testing.T) {
	f := newGuardFixture()
	assert.False(t, Authorize(OpApproveClaim, nil, Target{CenterID: f.centerA}).Allowed)
	assert.False(t, Authorize(OpApproveClaim, &Actor{Role: models.RoleRegistry}, Target{CenterID: f.centerA}).Allowed)
}

func TestAuthorize_UnknownOperation(t *testing.T) {
	f := newGuardFixture()
	assert.False(t, Authorize(Operation("claim.delete"), f.registry, Target{}).Allowed)
}

func TestAuthorize_CoordinatorWithoutCenter(t *testing.T) {
	f := newGuardFixture()
	orphan := &Actor{ID: uuid.New(), Role: models.RoleCoordinator}
	assert.False(t, Authorize(OpApproveClaim, orphan, Target{CenterID: f.centerA}).Allowed)
	assert.False(t, Authorize(OpApproveClaim, orphan, Target{}).Allowed)
}
