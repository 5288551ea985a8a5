package http

// SearchResponseDTO is the body of a successful search.
type SearchResponseDTO struct {
	Flights             []OfferDTO      `json:"flights"`
	TotalResults        int             `json:"total_results"`
	SearchParams        SearchParamsDTO `json:"search_params"`
	PremiumFeaturesUsed bool            `json:"premium_features_used"`
}

// SearchParamsDTO echoes the normalized search criteria.
type SearchParamsDTO struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departureDate"`
	Passengers    int    `json:"passengers"`
	Premium       bool   `json:"premium"`
}

// OfferDTO is one flight option. Field names match domain.Offer so clients
// can decode it directly; Duration adds a display label.
type OfferDTO struct {
	ID              string      `json:"id"`
	Airline         string      `json:"airline"`
	FlightNumber    string      `json:"flightNumber"`
	Aircraft        string      `json:"aircraft"`
	Class           string      `json:"class"`
	Price           float64     `json:"price"`
	Currency        string      `json:"currency,omitempty"`
	Duration        string      `json:"duration"`
	DurationMinutes int         `json:"durationMinutes"`
	Stops           int         `json:"stops"`
	Departure       EndpointDTO `json:"departure"`
	Arrival         EndpointDTO `json:"arrival"`
	Baggage         string      `json:"baggage,omitempty"`
	BookingURL      string      `json:"bookingUrl,omitempty"`
}

// EndpointDTO is one end of a journey.
type EndpointDTO struct {
	Time    string `json:"time" example:"08:30"`
	Airport string `json:"airport" example:"NEW"`
	City    string `json:"city" example:"New York"`
}

// CheckoutSessionDTO is the body returned when a checkout session is created.
type CheckoutSessionDTO struct {
	URL       string `json:"url" example:"http://localhost:8080/checkout/cs_0f1e2d"`
	SessionID string `json:"session_id" example:"cs_0f1e2d"`
}

// CheckoutStatusDTO reports the payment status of a session.
type CheckoutStatusDTO struct {
	Status        string `json:"status" example:"open"`
	PaymentStatus string `json:"payment_status" example:"unpaid"`
	AmountTotal   int64  `json:"amount_total" example:"999"`
	Currency      string `json:"currency" example:"usd"`
	SessionID     string `json:"session_id" example:"cs_0f1e2d"`
}

// CheckoutPageDTO describes the hosted checkout page for a session.
type CheckoutPageDTO struct {
	CheckoutStatusDTO
	CompleteURL string `json:"complete_url"`
}

// PremiumStatusDTO reports whether an account is premium.
type PremiumStatusDTO struct {
	Email     string `json:"email" example:"traveler@example.com"`
	IsPremium bool   `json:"is_premium"`
}
