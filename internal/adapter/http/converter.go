package http

import (
	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/usecase"
)

// ToDomainCriteria converts a SearchOffersRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchOffersRequest) domain.SearchCriteria {
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	return domain.SearchCriteria{
		From:          req.From,
		To:            req.To,
		DepartureDate: req.DepartureDate,
		Passengers:    passengers,
		Premium:       req.Premium,
	}
}

// ToSearchResponseDTO converts a domain.SearchResult to its response body.
func ToSearchResponseDTO(result *domain.SearchResult) SearchResponseDTO {
	flights := make([]OfferDTO, len(result.Offers))
	for i, o := range result.Offers {
		flights[i] = ToOfferDTO(o)
	}

	return SearchResponseDTO{
		Flights:      flights,
		TotalResults: result.TotalResults,
		SearchParams: SearchParamsDTO{
			From:          result.Criteria.From,
			To:            result.Criteria.To,
			DepartureDate: result.Criteria.DepartureDate,
			Passengers:    result.Criteria.Passengers,
			Premium:       result.Criteria.Premium,
		},
		PremiumFeaturesUsed: result.PremiumFeaturesUsed,
	}
}

// ToOfferDTO converts a domain.Offer to OfferDTO.
func ToOfferDTO(o domain.Offer) OfferDTO {
	return OfferDTO{
		ID:              o.ID,
		Airline:         o.Carrier,
		FlightNumber:    o.FlightNumber,
		Aircraft:        o.Aircraft,
		Class:           string(o.Class),
		Price:           o.Price,
		Currency:        o.Currency,
		Duration:        o.FormattedDuration(),
		DurationMinutes: o.DurationMinutes,
		Stops:           o.Stops,
		Departure:       toEndpointDTO(o.Departure),
		Arrival:         toEndpointDTO(o.Arrival),
		Baggage:         o.Baggage,
		BookingURL:      o.BookingURL,
	}
}

func toEndpointDTO(e domain.Endpoint) EndpointDTO {
	return EndpointDTO{
		Time:    e.Time,
		Airport: e.Airport,
		City:    e.City,
	}
}

// ToCheckoutSessionDTO converts a created session to its response body.
func ToCheckoutSessionDTO(result *usecase.CheckoutSessionResult) CheckoutSessionDTO {
	return CheckoutSessionDTO{
		URL:       result.URL,
		SessionID: result.SessionID,
	}
}

// ToCheckoutStatusDTO converts a domain.CheckoutStatus to its response body.
func ToCheckoutStatusDTO(status *domain.CheckoutStatus) CheckoutStatusDTO {
	return CheckoutStatusDTO{
		Status:        status.Status,
		PaymentStatus: status.PaymentStatus,
		AmountTotal:   status.AmountTotal,
		Currency:      status.Currency,
		SessionID:     status.SessionID,
	}
}
