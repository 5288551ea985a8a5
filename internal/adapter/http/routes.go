package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all FlySnipe API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the
// versioned API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check and hosted checkout page (no version prefix)
	e.GET("/health", h.Health)
	e.GET("/checkout/:session_id", h.CheckoutPage)

	api := e.Group("/api/v1", middleware...)

	api.POST("/flights/search", h.SearchFlights)
	api.POST("/checkout/sessions", h.CreateCheckoutSession)

	payments := api.Group("/payments/checkout")
	payments.GET("/status/:session_id", h.CheckoutStatus)
	payments.POST("/:session_id/complete", h.CompleteCheckout)

	api.GET("/users/premium", h.CheckPremium)
}
