package routers

import (
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/providers"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, providerController *providers.ProviderController, availabilityController *availability.AvailabilityController) {
	router.Get("/{providerID}", providerController.FindByID)
	router.Get("/{providerID}/unavailability", providerController.GetUnavailability)
	router.Get("/{providerID}/availability", availabilityController.GetAvailability)
}
