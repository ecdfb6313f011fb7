package claims

import (
	"encoding/json"
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"claims-portal-backend/internal/database/models"
	apperrors "claims-portal-backend/internal/errors"

	"github.com/microcosm-cc/bluemonday"
)

const (
	MaxDescriptionLength  = 1000
	MaxSupervisedStudents = 10

	maxPlaceLength   = 200
	maxRegLength     = 20
	maxRankLength    = 50
	maxCourseLength  = 20
	maxStudentLength = 200
	maxTitleLength   = 300
)

// Messages shared with callers and tests
const (
	MsgRequired    = "is required"
	MsgNotANumber  = "not-a-number"
	MsgNotString   = "must be a string"
	MsgNegative    = "must be >= 0"
	MsgPositiveInt = "must be a positive integer"
	MsgBadDate     = "must be a date in YYYY-MM-DD format"
	MsgBadClock    = "must be a time in HH:MM format"
	MsgEndBeforeSt = "must be after startTime"
)

var (
	sanitizer    = bluemonday.StrictPolicy()
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Validate turns an untyped payload carrying a claimType discriminant into a
// ValidatedClaim, or returns a *ValidationError keyed by payload field.
// Fields that do not belong to the chosen type are ignored.
func Validate(raw map[string]any) (*ValidatedClaim, error) {
	r := &fieldReader{raw: raw, errs: &apperrors.ValidationError{}}

	claimType := models.ClaimType(r.requiredString("claimType", 0))
	if r.errs.HasErrors() {
		return nil, r.errs
	}
	if !claimType.IsValid() {
		r.errs.Add("claimType", fmt.Sprintf("must be one of %s, %s, %s",
			models.ClaimTypeTeaching, models.ClaimTypeTransportation, models.ClaimTypeThesisProject))
		return nil, r.errs
	}

	description := r.description()

	var details Details
	switch claimType {
	case models.ClaimTypeTeaching:
		details = r.teaching()
	case models.ClaimTypeTransportation:
		details = r.transportation()
	case models.ClaimTypeThesisProject:
		details = r.thesis()
	}

	if r.errs.HasErrors() {
		return nil, r.errs
	}
	return &ValidatedClaim{Description: description, Details: details}, nil
}

func (r *fieldReader) teaching() TeachingDetails {
	d := TeachingDetails{
		Date:      Date{r.requiredDate("date")},
		StartTime: r.requiredClock("startTime"),
		EndTime:   r.requiredClock("endTime"),
	}
	if d.StartTime != "" && d.EndTime != "" && d.EndTime <= d.StartTime {
		r.errs.Add("endTime", MsgEndBeforeSt)
	}
	d.ContactHours = r.optionalNonNegative("contactHours")
	return d
}

func (r *fieldReader) transportation() TransportationDetails {
	d := TransportationDetails{
		TransportType:   models.TransportType(r.requiredString("transportType", 0)),
		DestinationFrom: r.requiredString("destinationFrom", maxPlaceLength),
		DestinationTo:   r.requiredString("destinationTo", maxPlaceLength),
	}
	if _, failed := r.errs.Fields["transportType"]; !failed && !d.TransportType.IsValid() {
		r.errs.Add("transportType", fmt.Sprintf("must be one of %s, %s",
			models.TransportTypePublic, models.TransportTypePrivate))
	}
	if d.TransportType == models.TransportTypePrivate {
		d.RegNumber = r.requiredString("regNumber", maxRegLength)
		d.CubicCapacity = r.requiredPositiveInt("cubicCapacity")
	}
	d.Amount = r.optionalNonNegative("amount")
	return d
}

func (r *fieldReader) thesis() ThesisDetails {
	d := ThesisDetails{ThesisType: models.ThesisType(r.requiredString("thesisType", 0))}
	if _, failed := r.errs.Fields["thesisType"]; failed {
		return d
	}

	switch d.ThesisType {
	case models.ThesisTypeSupervision:
		d.SupervisionRank = r.requiredString("supervisionRank", maxRankLength)
		d.Students = r.students()
	case models.ThesisTypeExamination:
		d.CourseCode = r.requiredString("courseCode", maxCourseLength)
		if date := r.requiredDate("examDate"); !date.IsZero() {
			d.ExamDate = &Date{date}
		}
	default:
		r.errs.Add("thesisType", fmt.Sprintf("must be one of %s, %s",
			models.ThesisTypeSupervision, models.ThesisTypeExamination))
	}
	return d
}

func (r *fieldReader) students() []models.ThesisStudent {
	const key = "students"
	if !r.present(key) {
		r.errs.Add(key, "at least 1 student is required")
		return nil
	}

	var items []any
	switch v := r.raw[key].(type) {
	case []any:
		items = v
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	default:
		r.errs.Add(key, "must be a list of students")
		return nil
	}

	switch {
	case len(items) == 0:
		r.errs.Add(key, "at least 1 student is required")
		return nil
	case len(items) > MaxSupervisedStudents:
		r.errs.Add(key, fmt.Sprintf("at most %d students are allowed", MaxSupervisedStudents))
		return nil
	}

	out := make([]models.ThesisStudent, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			r.errs.Add(fmt.Sprintf("%s[%d]", key, i), "must be an object")
			continue
		}
		sub := &fieldReader{raw: m, errs: &apperrors.ValidationError{}}
		s := models.ThesisStudent{
			StudentName: sub.requiredString("studentName", maxStudentLength),
			ThesisTitle: sub.requiredString("thesisTitle", maxTitleLength),
		}
		for field, msg := range sub.errs.Fields {
			r.errs.Add(fmt.Sprintf("%s[%d].%s", key, i, field), msg)
		}
		out = append(out, s)
	}
	return out
}

// description is optional; tags are stripped and entities unescaped before
// the length check, so the stored text is what the user typed minus markup
func (r *fieldReader) description() *string {
	const key = "description"
	if !r.present(key) {
		return nil
	}
	s, ok := r.raw[key].(string)
	if !ok {
		r.errs.Add(key, MsgNotString)
		return nil
	}
	s = strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(s)))
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		r.errs.Add(key, fmt.Sprintf("must be at most %d characters", MaxDescriptionLength))
		return nil
	}
	return &s
}

type fieldReader struct {
	raw  map[string]any
	errs *apperrors.ValidationError
}

// present treats missing keys, JSON null and blank strings alike
func (r *fieldReader) present(key string) bool {
	v, ok := r.raw[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

func (r *fieldReader) requiredString(key string, max int) string {
	if !r.present(key) {
		r.errs.Add(key, MsgRequired)
		return ""
	}
	s, ok := r.raw[key].(string)
	if !ok {
		r.errs.Add(key, MsgNotString)
		return ""
	}
	s = strings.TrimSpace(s)
	if max > 0 && utf8.RuneCountInString(s) > max {
		r.errs.Add(key, fmt.Sprintf("must be at most %d characters", max))
	}
	return s
}

func (r *fieldReader) requiredDate(key string) time.Time {
	s := r.requiredString(key, 0)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		r.errs.Add(key, MsgBadDate)
		return time.Time{}
	}
	return t
}

func (r *fieldReader) requiredClock(key string) string {
	s := r.requiredString(key, 0)
	if s == "" {
		return ""
	}
	if !clockPattern.MatchString(s) {
		r.errs.Add(key, MsgBadClock)
		return ""
	}
	return s
}

func (r *fieldReader) optionalNonNegative(key string) *float64 {
	if !r.present(key) {
		return nil
	}
	f, ok := toNumber(r.raw[key])
	if !ok {
		r.errs.Add(key, MsgNotANumber)
		return nil
	}
	if f < 0 {
		r.errs.Add(key, MsgNegative)
		return nil
	}
	return &f
}

func (r *fieldReader) requiredPositiveInt(key string) int {
	if !r.present(key) {
		r.errs.Add(key, MsgRequired)
		return 0
	}
	f, ok := toNumber(r.raw[key])
	if !ok {
		r.errs.Add(key, MsgNotANumber)
		return 0
	}
	if f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		r.errs.Add(key, MsgPositiveInt)
		return 0
	}
	return int(f)
}

// toNumber accepts JSON numbers, Go numerics and numeric strings
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
