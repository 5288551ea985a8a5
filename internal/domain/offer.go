// Package domain contains the core entities and rules for FlySnipe.
// These types are transport-agnostic and shared by the client engine, the
// upgrade state machine, and the backend API.
package domain

import (
	"strconv"
	"strings"
)

// FareClass is the travel class of an offer.
type FareClass string

// Supported fare classes.
const (
	FareEconomy  FareClass = "economy"
	FarePremium  FareClass = "premium"
	FareBusiness FareClass = "business"
	FareFirst    FareClass = "first"
)

// IsValid reports whether the fare class is one of the supported values.
func (c FareClass) IsValid() bool {
	switch c {
	case FareEconomy, FarePremium, FareBusiness, FareFirst:
		return true
	default:
		return false
	}
}

// ParseFareClass normalizes free-form class labels ("Premium Economy",
// "First Class", "biz") to a FareClass.
func ParseFareClass(s string) (FareClass, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case "economy", "eco", "y":
		return FareEconomy, true
	case "premium", "premium economy", "premium_economy", "w":
		return FarePremium, true
	case "business", "biz", "j", "c":
		return FareBusiness, true
	case "first", "first class", "f":
		return FareFirst, true
	default:
		return "", false
	}
}

// Offer represents one flight option returned by a search.
// Offers are immutable once received.
type Offer struct {
	// ID is a unique identifier for this offer
	ID string `json:"id"`

	// Carrier is the airline code (e.g., "LX")
	Carrier string `json:"airline"`

	// FlightNumber is the carrier's flight number (e.g., "LX160")
	FlightNumber string `json:"flightNumber"`

	// Aircraft is a display label for the equipment (e.g., "Airbus A350")
	Aircraft string `json:"aircraft"`

	// Class is the fare class
	Class FareClass `json:"class"`

	// Price is the total fare amount
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency,omitempty"`

	// DurationMinutes is the total travel time
	DurationMinutes int `json:"durationMinutes"`

	// Stops is the number of stops (0 = direct)
	Stops int `json:"stops"`

	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`

	// Baggage is an optional baggage note
	Baggage string `json:"baggage,omitempty"`

	// BookingURL is an optional external booking reference
	BookingURL string `json:"bookingUrl,omitempty"`
}

// Endpoint is one end of a journey.
type Endpoint struct {
	// Time is the local time of day in HH:MM form
	Time string `json:"time"`

	// Airport is the airport code
	Airport string `json:"airport"`

	// City is the city name
	City string `json:"city"`
}

// FormattedDuration returns the offer duration as "Xh Ym".
func (o Offer) FormattedDuration() string {
	return FormatDuration(o.DurationMinutes)
}

// StopsLabel returns "Direct", "1 stop" or "N stops".
func (o Offer) StopsLabel() string {
	switch o.Stops {
	case 0:
		return "Direct"
	case 1:
		return "1 stop"
	default:
		return strconv.Itoa(o.Stops) + " stops"
	}
}

// FormatDuration formats total minutes as "Xh Ym", "Xh" or "Ym".
func FormatDuration(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
