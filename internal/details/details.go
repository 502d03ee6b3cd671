// Package details implements the member-facing personal-details form: strict
// validation of the submitted record and the load/upsert round trips against
// the community backend. The admin roster does not validate this strictly;
// only the standalone form does.
package details

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"

	"sabha/internal/roster"
)

var (
	phonePattern  = regexp.MustCompile(`^\d{10}$`)
	adhaarPattern = regexp.MustCompile(`^\d{12}$`)
)

// ValidationError maps attribute names to human-readable problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid personal details: %s", strings.Join(names, ", "))
}

// Validate applies the form's strict rules: email is required and must be
// well-formed; phone number, adhaar and date of birth are optional but must
// match their exact shapes when present. A nil return means the record is
// acceptable.
func Validate(e roster.Entry) *ValidationError {
	fields := make(map[string]string)

	if e.Email == "" || !govalidator.IsEmail(e.Email) {
		fields["email"] = "Valid email is required"
	}
	if e.PhoneNumber != "" && !phonePattern.MatchString(e.PhoneNumber) {
		fields["phone_number"] = "Phone number must be 10 digits"
	}
	if e.Adhaar != "" && !adhaarPattern.MatchString(e.Adhaar) {
		fields["adhaar"] = "Adhaar number must be exactly 12 digits"
	}
	if e.DateOfBirth != "" && !roster.ValidDMY(e.DateOfBirth) {
		fields["date_of_birth"] = "Date of birth must be a valid DD/MM/YYYY date"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// API is the slice of the community backend the form consumes.
type API interface {
	MyPersonalDetails(ctx context.Context, token string) (roster.Entry, error)
	SavePersonalDetails(ctx context.Context, token string, entry roster.Entry) error
}

// Service loads and upserts the caller's own record.
type Service struct {
	api API
}

// NewService builds a personal-details service.
func NewService(api API) *Service {
	return &Service{api: api}
}

// Load fetches the member's record with the date of birth converted to the
// DD/MM/YYYY display form the form edits in.
func (s *Service) Load(ctx context.Context, token string) (roster.Entry, error) {
	entry, err := s.api.MyPersonalDetails(ctx, token)
	if err != nil {
		return roster.Entry{}, err
	}
	entry.DateOfBirth = roster.FormatDMY(entry.DateOfBirth)
	return entry, nil
}

// Submit validates and upserts the member's record. Validation failures are
// returned as a *ValidationError without touching the backend.
func (s *Service) Submit(ctx context.Context, token string, entry roster.Entry) error {
	if verr := Validate(entry); verr != nil {
		return verr
	}
	return s.api.SavePersonalDetails(ctx, token, entry)
}
