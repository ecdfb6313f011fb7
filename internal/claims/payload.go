// Package claims holds the claim payload variants, their validation and the
// approval state machine. Nothing in here touches storage.
package claims

import (
	"encoding/json"
	"fmt"
	"time"

	"claims-portal-backend/internal/database/models"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar day rendered as YYYY-MM-DD
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Details is the type-specific part of a claim. Only the three variants in
// this file implement it.
type Details interface {
	ClaimType() models.ClaimType
	sealed()
}

// TeachingDetails describes one teaching session
type TeachingDetails struct {
	Date         Date     `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	ContactHours *float64 `json:"contactHours,omitempty"`
}

// TransportationDetails describes one trip. RegNumber and CubicCapacity are
// set only for private vehicles.
type TransportationDetails struct {
	TransportType   models.TransportType `json:"transportType"`
	DestinationFrom string               `json:"destinationFrom"`
	DestinationTo   string               `json:"destinationTo"`
	RegNumber       string               `json:"regNumber,omitempty"`
	CubicCapacity   int                  `json:"cubicCapacity,omitempty"`
	Amount          *float64             `json:"amount,omitempty"`
}

// ThesisDetails describes supervision or examination work. Supervision uses
// SupervisionRank and Students; examination uses CourseCode and ExamDate.
type ThesisDetails struct {
	ThesisType      models.ThesisType      `json:"thesisType"`
	SupervisionRank string                 `json:"supervisionRank,omitempty"`
	Students        []models.ThesisStudent `json:"students,omitempty"`
	CourseCode      string                 `json:"courseCode,omitempty"`
	ExamDate        *Date                  `json:"examDate,omitempty"`
}

func (TeachingDetails) ClaimType() models.ClaimType       { return models.ClaimTypeTeaching }
func (TransportationDetails) ClaimType() models.ClaimType { return models.ClaimTypeTransportation }
func (ThesisDetails) ClaimType() models.ClaimType         { return models.ClaimTypeThesisProject }

func (TeachingDetails) sealed()       {}
func (TransportationDetails) sealed() {}
func (ThesisDetails) sealed()         {}

// ValidatedClaim is the normalized result of Validate
type ValidatedClaim struct {
	Description *string
	Details     Details
}

// ClaimType returns the discriminant of the chosen variant
func (v *ValidatedClaim) ClaimType() models.ClaimType {
	return v.Details.ClaimType()
}

// ApplyTo writes the payload onto c. Every type-specific column not owned by
// the variant is cleared.
func (v *ValidatedClaim) ApplyTo(c *models.Claim) error {
	clearDetails(c)
	c.Description = v.Description

	switch d := v.Details.(type) {
	case TeachingDetails:
		c.ClaimType = models.ClaimTypeTeaching
		date := datatypes.Date(d.Date.Time)
		c.TeachingDate = &date
		c.StartTime = strPtr(d.StartTime)
		c.EndTime = strPtr(d.EndTime)
		c.ContactHours = d.ContactHours
	case TransportationDetails:
		c.ClaimType = models.ClaimTypeTransportation
		tt := d.TransportType
		c.TransportType = &tt
		c.DestinationFrom = strPtr(d.DestinationFrom)
		c.DestinationTo = strPtr(d.DestinationTo)
		c.Amount = d.Amount
		if d.TransportType == models.TransportTypePrivate {
			c.RegNumber = strPtr(d.RegNumber)
			cc := d.CubicCapacity
			c.CubicCapacity = &cc
		}
	case ThesisDetails:
		c.ClaimType = models.ClaimTypeThesisProject
		tt := d.ThesisType
		c.ThesisType = &tt
		switch d.ThesisType {
		case models.ThesisTypeSupervision:
			c.SupervisionRank = strPtr(d.SupervisionRank)
			students := datatypes.NewJSONSlice(d.Students)
			c.Students = &students
		case models.ThesisTypeExamination:
			c.CourseCode = strPtr(d.CourseCode)
			if d.ExamDate != nil {
				date := datatypes.Date(d.ExamDate.Time)
				c.ExamDate = &date
			}
		default:
			return fmt.Errorf("unknown thesis type %q", d.ThesisType)
		}
	default:
		return fmt.Errorf("unknown claim details %T", v.Details)
	}
	return nil
}

// FromModel rebuilds the variant stored on c
func FromModel(c *models.Claim) (Details, error) {
	switch c.ClaimType {
	case models.ClaimTypeTeaching:
		d := TeachingDetails{
			StartTime:    deref(c.StartTime),
			EndTime:      deref(c.EndTime),
			ContactHours: c.ContactHours,
		}
		if c.TeachingDate != nil {
			d.Date = Date{time.Time(*c.TeachingDate)}
		}
		return d, nil
	case models.ClaimTypeTransportation:
		d := TransportationDetails{
			DestinationFrom: deref(c.DestinationFrom),
			DestinationTo:   deref(c.DestinationTo),
			RegNumber:       deref(c.RegNumber),
			Amount:          c.Amount,
		}
		if c.TransportType != nil {
			d.TransportType = *c.TransportType
		}
		if c.CubicCapacity != nil {
			d.CubicCapacity = *c.CubicCapacity
		}
		return d, nil
	case models.ClaimTypeThesisProject:
		d := ThesisDetails{
			SupervisionRank: deref(c.SupervisionRank),
			CourseCode:      deref(c.CourseCode),
		}
		if c.ThesisType != nil {
			d.ThesisType = *c.ThesisType
		}
		if c.Students != nil {
			d.Students = []models.ThesisStudent(*c.Students)
		}
		if c.ExamDate != nil {
			d.ExamDate = &Date{time.Time(*c.ExamDate)}
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown claim type %q", c.ClaimType)
	}
}

func clearDetails(c *models.Claim) {
	c.TeachingDate = nil
	c.StartTime = nil
	c.EndTime = nil
	c.ContactHours = nil

	c.TransportType = nil
	c.DestinationFrom = nil
	c.DestinationTo = nil
	c.RegNumber = nil
	c.CubicCapacity = nil
	c.Amount = nil

	c.ThesisType = nil
	c.SupervisionRank = nil
	c.Students = nil
	c.CourseCode = nil
	c.ExamDate = nil
}

func strPtr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
