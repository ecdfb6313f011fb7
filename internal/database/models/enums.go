package models

// Role defines what a user may do across the directory
type Role string

const (
	RoleRegistry    Role = "REGISTRY"
	RoleCoordinator Role = "COORDINATOR"
	RoleLecturer    Role = "LECTURER"
)

// ClaimType is the discriminant of a claim payload
type ClaimType string

const (
	ClaimTypeTeaching       ClaimType = "TEACHING"
	ClaimTypeTransportation ClaimType = "TRANSPORTATION"
	ClaimTypeThesisProject  ClaimType = "THESIS_PROJECT"
)

// ClaimStatus is the lifecycle state of a claim
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
)

// TransportType distinguishes public transport from a private vehicle
type TransportType string

const (
	TransportTypePublic  TransportType = "PUBLIC"
	TransportTypePrivate TransportType = "PRIVATE"
)

// ThesisType splits thesis-project claims into supervision and examination work
type ThesisType string

const (
	ThesisTypeSupervision ThesisType = "SUPERVISION"
	ThesisTypeExamination ThesisType = "EXAMINATION"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleRegistry, RoleCoordinator, RoleLecturer:
		return true
	}
	return false
}

// IsValid checks if the ClaimType is valid
func (t ClaimType) IsValid() bool {
	switch t {
	case ClaimTypeTeaching, ClaimTypeTransportation, ClaimTypeThesisProject:
		return true
	}
	return false
}

// IsValid checks if the ClaimStatus is valid
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected
}

// IsValid checks if the TransportType is valid
func (t TransportType) IsValid() bool {
	switch t {
	case TransportTypePublic, TransportTypePrivate:
		return true
	}
	return false
}

// IsValid checks if the ThesisType is valid
func (t ThesisType) IsValid() bool {
	switch t {
	case ThesisTypeSupervision, ThesisTypeExamination:
		return true
	}
	return false
}
