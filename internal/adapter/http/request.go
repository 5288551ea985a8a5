package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// SearchOffersRequest represents the request body for an offer search.
type SearchOffersRequest struct {
	// From is the origin city or airport (e.g., "New York")
	From string `json:"from" example:"New York"`

	// To is the destination city or airport (e.g., "London")
	To string `json:"to" example:"London"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2026-12-01"`

	// Passengers is the number of passengers (1-9, default 1)
	Passengers int `json:"passengers,omitempty" example:"1"`

	// Premium requests the full premium result set
	Premium bool `json:"premium,omitempty"`
}

// CreateCheckoutRequest represents the request body for starting a checkout.
type CreateCheckoutRequest struct {
	// PackageID is the premium package: monthly or yearly
	PackageID string `json:"package_id" example:"monthly"`

	// Email identifies the account to upgrade; empty means anonymous
	Email string `json:"email,omitempty" example:"traveler@example.com"`
}

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets callers match request validation failures with domain.ErrInvalidArgument.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidArgument
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// When a field fails more than once, the first message wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// Validate validates the search request and returns every failing field.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)

	if r.From == "" {
		errs.Add("from", "from is required")
	}
	if r.To == "" {
		errs.Add("to", "to is required")
	}
	if r.From != "" && strings.EqualFold(r.From, r.To) {
		errs.Add("to", "from and to must be different")
	}

	r.validateDepartureDate(errs)

	if r.Passengers < 0 {
		errs.Add("passengers", "passengers must be at least 1")
	} else if r.Passengers > 9 {
		errs.Add("passengers", "passengers cannot exceed 9")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchOffersRequest) validateDepartureDate(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
		return
	}
	if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		errs.Add("departureDate", "departureDate is not a valid date")
	}
}

// Validate validates the checkout request.
func (r *CreateCheckoutRequest) Validate() error {
	errs := &ValidationErrors{}

	r.PackageID = strings.ToLower(strings.TrimSpace(r.PackageID))
	r.Email = strings.TrimSpace(r.Email)

	if r.PackageID == "" {
		errs.Add("package_id", "package_id is required")
	} else if _, err := domain.LookupPackage(r.PackageID); err != nil {
		errs.Add("package_id", "package_id must be one of: monthly, yearly")
	}

	if r.Email != "" && r.Email != domain.AnonymousEmail && !emailPattern.MatchString(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
