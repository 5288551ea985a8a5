package domain

import (
	"regexp"
	"strings"
	"time"
)

// SearchCriteria defines the parameters for an offer search.
type SearchCriteria struct {
	// From is the origin city or airport
	From string `json:"from"`

	// To is the destination city or airport
	To string `json:"to"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of passengers (default: 1)
	Passengers int `json:"passengers"`

	// Premium requests the full premium result set
	Premium bool `json:"premium"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a *ValidationError (which wraps ErrInvalidArgument) on failure.
func (s *SearchCriteria) Validate() error {
	if strings.TrimSpace(s.From) == "" {
		return NewValidationError("from", "from is required")
	}
	if strings.TrimSpace(s.To) == "" {
		return NewValidationError("to", "to is required")
	}
	if strings.EqualFold(strings.TrimSpace(s.From), strings.TrimSpace(s.To)) {
		return NewValidationError("to", "from and to must be different")
	}

	if s.DepartureDate == "" {
		return NewValidationError("departureDate", "departureDate is required")
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return NewValidationError("departureDate", "departureDate must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
		return NewValidationError("departureDate", "departureDate is not a valid date")
	}

	if s.Passengers < 1 {
		return NewValidationError("passengers", "passengers must be at least 1")
	}
	if s.Passengers > 9 {
		return NewValidationError("passengers", "passengers cannot exceed 9")
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	s.From = strings.TrimSpace(s.From)
	s.To = strings.TrimSpace(s.To)
	if s.Passengers == 0 {
		s.Passengers = 1
	}
}

// SearchResult is the backend's answer to a search.
type SearchResult struct {
	Offers              []Offer
	TotalResults        int
	Criteria            SearchCriteria
	PremiumFeaturesUsed bool
}

// NewSearchResult builds a SearchResult, normalizing a nil offer slice.
func NewSearchResult(criteria SearchCriteria, offers []Offer) SearchResult {
	if offers == nil {
		offers = []Offer{}
	}
	return SearchResult{
		Offers:              offers,
		TotalResults:        len(offers),
		Criteria:            criteria,
		PremiumFeaturesUsed: criteria.Premium,
	}
}

// SearchRecord is one entry of the backend search log.
type SearchRecord struct {
	ID            string
	From          string
	To            string
	DepartureDate string
	Passengers    int
	Premium       bool
	ResultsCount  int
	CreatedAt     time.Time
}
