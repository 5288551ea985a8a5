package domain

import (
	"math"
	"strconv"
	"strings"
)

// SortKey defines the available orderings for a result set.
type SortKey string

// Available sort keys.
const (
	// SortNone keeps the original fetch order
	SortNone SortKey = ""

	// SortPriceAsc sorts by price ascending (cheapest first)
	SortPriceAsc SortKey = "price"

	// SortPriceDesc sorts by price descending
	SortPriceDesc SortKey = "price-desc"

	// SortDurationAsc sorts by duration ascending (shortest first)
	SortDurationAsc SortKey = "duration"

	// SortDepartureAsc sorts by departure time of day ascending
	SortDepartureAsc SortKey = "departure"

	// SortArrivalAsc sorts by arrival time of day ascending
	SortArrivalAsc SortKey = "arrival"
)

// IsValid checks if the sort key is a known value.
func (s SortKey) IsValid() bool {
	switch s {
	case SortNone, SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDepartureAsc, SortArrivalAsc:
		return true
	default:
		return false
	}
}

// ParseSortKey converts a user-facing string to a SortKey.
// "none" and "" both map to SortNone; "price_desc" is accepted as an alias.
func ParseSortKey(s string) (SortKey, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "none":
		return SortNone, nil
	case "price_desc":
		return SortPriceDesc, nil
	}

	key := SortKey(normalized)
	if !key.IsValid() {
		return SortNone, WrapInvalidArgument("unknown sort key %q", s)
	}
	return key, nil
}

// StopsMode selects how the stop-count constraint is applied.
type StopsMode int

// Stop-count constraint modes.
const (
	StopsAll StopsMode = iota
	StopsExact
	StopsTwoOrMore
)

// StopsFilter constrains the number of stops.
// The zero value matches every offer.
type StopsFilter struct {
	Mode  StopsMode
	Count int
}

// AnyStops matches every offer.
func AnyStops() StopsFilter { return StopsFilter{Mode: StopsAll} }

// ExactStops matches offers with exactly n stops.
func ExactStops(n int) StopsFilter { return StopsFilter{Mode: StopsExact, Count: n} }

// TwoOrMoreStops matches offers with at least two stops.
func TwoOrMoreStops() StopsFilter { return StopsFilter{Mode: StopsTwoOrMore} }

// ParseStopsFilter parses "all", "2+" or an exact integer.
func ParseStopsFilter(s string) (StopsFilter, error) {
	normalized := strings.TrimSpace(strings.ToLower(s))
	switch normalized {
	case "", "all":
		return AnyStops(), nil
	case "2+":
		return TwoOrMoreStops(), nil
	}

	n, err := strconv.Atoi(normalized)
	if err != nil || n < 0 {
		return StopsFilter{}, WrapInvalidArgument("stops must be \"all\", \"2+\" or a non-negative integer, got %q", s)
	}
	return ExactStops(n), nil
}

// Matches reports whether a stop count satisfies the constraint.
func (f StopsFilter) Matches(stops int) bool {
	switch f.Mode {
	case StopsExact:
		return stops == f.Count
	case StopsTwoOrMore:
		return stops >= 2
	default:
		return true
	}
}

// String returns the user-facing representation of the constraint.
func (f StopsFilter) String() string {
	switch f.Mode {
	case StopsExact:
		return strconv.Itoa(f.Count)
	case StopsTwoOrMore:
		return "2+"
	default:
		return "all"
	}
}

// FilterSpec holds the user-selected inclusion constraints.
// Nil pointer fields mean "no constraint" on that axis.
type FilterSpec struct {
	// Class restricts results to one fare class; nil means all classes
	Class *FareClass `json:"class,omitempty"`

	// Stops restricts the number of stops
	Stops StopsFilter `json:"-"`

	// MaxPrice is an inclusive upper bound; nil means unbounded.
	// A zero value is a real bound and excludes every priced offer.
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// Validate checks the spec for malformed values.
func (f FilterSpec) Validate() error {
	if f.Class != nil && !f.Class.IsValid() {
		return WrapInvalidArgument("unknown fare class %q", string(*f.Class))
	}

	switch f.Stops.Mode {
	case StopsAll, StopsTwoOrMore:
	case StopsExact:
		if f.Stops.Count < 0 {
			return WrapInvalidArgument("exact stop count must be non-negative, got %d", f.Stops.Count)
		}
	default:
		return WrapInvalidArgument("unknown stops mode %d", f.Stops.Mode)
	}

	if f.MaxPrice != nil && (math.IsNaN(*f.MaxPrice) || *f.MaxPrice < 0) {
		return WrapInvalidArgument("maxPrice must be a non-negative number")
	}

	return nil
}

// Matches checks if an offer satisfies every constraint.
func (f FilterSpec) Matches(o Offer) bool {
	if f.Class != nil && o.Class != *f.Class {
		return false
	}

	if !f.Stops.Matches(o.Stops) {
		return false
	}

	// Price bound is inclusive
	if f.MaxPrice != nil && o.Price > *f.MaxPrice {
		return false
	}

	return true
}

// IsEmpty reports whether the spec places no constraint on any axis.
func (f FilterSpec) IsEmpty() bool {
	return f.Class == nil && f.Stops.Mode == StopsAll && f.MaxPrice == nil
}
