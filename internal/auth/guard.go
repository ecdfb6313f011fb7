package auth

import (
	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/google/uuid"
)

// DenyReason is the only reason ever given for a denial
const DenyReason = "not permitted"

// Operation names a guarded action
type Operation string

const (
	OpSubmitClaim  Operation = "claim.submit"
	OpApproveClaim Operation = "claim.approve"
	OpRejectClaim  Operation = "claim.reject"
	OpViewClaim    Operation = "claim.view"
	OpListClaims   Operation = "claim.list"

	OpCreateDepartment      Operation = "department.create"
	OpRenameDepartment      Operation = "department.rename"
	OpDeleteDepartment      Operation = "department.delete"
	OpAssignLecturer        Operation = "lecturer.assign"
	OpUnassignLecturer      Operation = "lecturer.unassign"
	OpManageCenterLecturers Operation = "center.lecturers"
	OpViewCenter            Operation = "center.view"

	OpCreateCenter            Operation = "center.create"
	OpRenameCenter            Operation = "center.rename"
	OpChangeCenterCoordinator Operation = "center.coordinator"
	OpDeleteCenter            Operation = "center.delete"
	OpManageUsers             Operation = "user.manage"

	OpViewDirectory Operation = "user.view"
)

// Actor is the authenticated caller, loaded fresh from storage per request
type Actor struct {
	ID                  uuid.UUID
	Email               string
	Role                models.Role
	CoordinatedCenterID *uuid.UUID
	LecturerCenterID    *uuid.UUID
	DepartmentID        *uuid.UUID
}

// IsRegistry reports whether the actor has cross-center authority
func (a *Actor) IsRegistry() bool {
	return a != nil && a.Role == models.RoleRegistry
}

// Coordinates reports whether the actor is the coordinator of centerID
func (a *Actor) Coordinates(centerID uuid.UUID) bool {
	return a != nil && a.Role == models.RoleCoordinator &&
		a.CoordinatedCenterID != nil && centerID != uuid.Nil && *a.CoordinatedCenterID == centerID
}

// LecturesIn reports whether the actor is a lecturer of centerID
func (a *Actor) LecturesIn(centerID uuid.UUID) bool {
	return a != nil && a.Role == models.RoleLecturer &&
		a.LecturerCenterID != nil && centerID != uuid.Nil && *a.LecturerCenterID == centerID
}

// Target describes what an operation touches. Zero ids mean "not given".
type Target struct {
	CenterID    uuid.UUID
	SubmitterID uuid.UUID
	UserID      uuid.UUID
}

// Decision is the outcome of Authorize
type Decision struct {
	Allowed bool
	Reason  string
}

// Err returns ErrNotPermitted for a denial and nil otherwise
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return apperrors.ErrNotPermitted
}

type rule func(a *Actor, t Target) bool

func registry(a *Actor, _ Target) bool {
	return a.IsRegistry()
}

func coordinatorOfCenter(a *Actor, t Target) bool {
	return a.Coordinates(t.CenterID)
}

func lecturerOfCenter(a *Actor, t Target) bool {
	return a.LecturesIn(t.CenterID)
}

func submitter(a *Actor, t Target) bool {
	return t.SubmitterID != uuid.Nil && t.SubmitterID == a.ID
}

func ownClaimsOnly(a *Actor, t Target) bool {
	return a.Role == models.RoleLecturer && submitter(a, t)
}

func self(a *Actor, t Target) bool {
	return t.UserID != uuid.Nil && t.UserID == a.ID
}

func anyOf(rules ...rule) rule {
	return func(a *Actor, t Target) bool {
		for _, r := range rules {
			if r(a, t) {
				return true
			}
		}
		return false
	}
}

var centerManager = anyOf(coordinatorOfCenter, registry)

// policy is the single source of truth for who may do what
var policy = map[Operation]rule{
	OpSubmitClaim:  lecturerOfCenter,
	OpApproveClaim: centerManager,
	OpRejectClaim:  centerManager,
	OpViewClaim:    anyOf(submitter, coordinatorOfCenter, registry),
	OpListClaims:   anyOf(registry, coordinatorOfCenter, ownClaimsOnly),

	OpCreateDepartment:      centerManager,
	OpRenameDepartment:      centerManager,
	OpDeleteDepartment:      centerManager,
	OpAssignLecturer:        centerManager,
	OpUnassignLecturer:      centerManager,
	OpManageCenterLecturers: centerManager,
	OpViewCenter:            centerManager,

	OpCreateCenter:            registry,
	OpRenameCenter:            registry,
	OpChangeCenterCoordinator: registry,
	OpDeleteCenter:            registry,
	OpManageUsers:             registry,

	OpViewDirectory: anyOf(self, coordinatorOfCenter, registry),
}

// Authorize decides whether actor may perform op on target. It never looks
// anything up; callers pass the center id carried by the request.
func Authorize(op Operation, actor *Actor, target Target) Decision {
	if actor == nil || actor.ID == uuid.Nil {
		return Decision{Reason: DenyReason}
	}
	r, ok := policy[op]
	if !ok || !r(actor, target) {
		return Decision{Reason: DenyReason}
	}
	return Decision{Allowed: true}
}
