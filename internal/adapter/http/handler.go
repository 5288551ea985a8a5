// Package http provides the HTTP handler layer for the FlySnipe backend API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flysnipe/flysnipe/internal/adapter/http/response"
	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/usecase"
)

// Handler serves the search, checkout and premium endpoints.
type Handler struct {
	search   usecase.OfferSearchUseCase
	checkout usecase.CheckoutUseCase
}

// NewHandler creates a new Handler with the given use cases.
func NewHandler(search usecase.OfferSearchUseCase, checkout usecase.CheckoutUseCase) *Handler {
	return &Handler{
		search:   search,
		checkout: checkout,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flight offers
// @Description Returns a shortlist for free searches and the full set for premium searches
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchOffersRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchOffersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), ToDomainCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSearchResponseDTO(result))
}

// CreateCheckoutSession handles POST /api/v1/checkout/sessions
//
// @Summary Create a checkout session
// @Description Starts a hosted checkout for a premium package
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CreateCheckoutRequest true "Package and account"
// @Success 200 {object} CheckoutSessionDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/checkout/sessions [post]
func (h *Handler) CreateCheckoutSession(c echo.Context) error {
	var req CreateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.checkout.CreateSession(c.Request().Context(), req.PackageID, req.Email)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToCheckoutSessionDTO(result))
}

// CheckoutStatus handles GET /api/v1/payments/checkout/status/:session_id
//
// @Summary Get checkout status
// @Description Reports whether a checkout session is open, complete or expired
// @Tags checkout
// @Produce json
// @Param session_id path string true "Checkout session ID"
// @Success 200 {object} CheckoutStatusDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/payments/checkout/status/{session_id} [get]
func (h *Handler) CheckoutStatus(c echo.Context) error {
	status, err := h.checkout.Status(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToCheckoutStatusDTO(status))
}

// CompleteCheckout handles POST /api/v1/payments/checkout/:session_id/complete
//
// @Summary Complete a checkout session
// @Description Marks the session paid and upgrades the account to premium
// @Tags checkout
// @Produce json
// @Param session_id path string true "Checkout session ID"
// @Success 200 {object} CheckoutStatusDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 409 {object} response.ErrorDetail "Session expired"
// @Router /api/v1/payments/checkout/{session_id}/complete [post]
func (h *Handler) CompleteCheckout(c echo.Context) error {
	status, err := h.checkout.Complete(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToCheckoutStatusDTO(status))
}

// CheckoutPage handles GET /checkout/:session_id, the hosted checkout page
// that session URLs point at.
//
// @Summary Hosted checkout page
// @Tags checkout
// @Produce json
// @Param session_id path string true "Checkout session ID"
// @Success 200 {object} CheckoutPageDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /checkout/{session_id} [get]
func (h *Handler) CheckoutPage(c echo.Context) error {
	sessionID := c.Param("session_id")
	status, err := h.checkout.Status(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, CheckoutPageDTO{
		CheckoutStatusDTO: ToCheckoutStatusDTO(status),
		CompleteURL:       "/api/v1/payments/checkout/" + sessionID + "/complete",
	})
}

// CheckPremium handles GET /api/v1/users/premium?email=
//
// @Summary Check premium status
// @Tags users
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} PremiumStatusDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "User not found"
// @Router /api/v1/users/premium [get]
func (h *Handler) CheckPremium(c echo.Context) error {
	email := c.QueryParam("email")
	isPremium, err := h.checkout.CheckPremium(c.Request().Context(), email)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, PremiumStatusDTO{
		Email:     email,
		IsPremium: isPremium,
	})
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	var requestErrs *ValidationErrors
	if errors.As(err, &requestErrs) {
		return response.ValidationError(c, requestErrs.ToMap())
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	switch {
	case errors.Is(err, domain.ErrUnknownPackage):
		return response.BadRequest(c, response.MsgUnknownPackage)
	case errors.Is(err, domain.ErrInvalidArgument):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrSessionNotFound):
		return response.NotFound(c, response.MsgSessionNotFound)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, response.MsgUserNotFound)
	case errors.Is(err, domain.ErrInvalidState):
		return response.Conflict(c, response.MsgSessionExpired)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	default:
		return response.InternalServerError(c)
	}
}
