package routers

import (
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/bookings"
	"medibook-service/internal/app/services/core/providers"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewareInstance *middlewares.Middlewares,
	providerController *providers.ProviderController,
	availabilityController *availability.AvailabilityController,
	bookingController *bookings.BookingController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewareInstance.LimitRequestBody)
	router.Use(middlewareInstance.RequestIDMiddleware)
	router.Use(middlewareInstance.Logging(logger))
	router.Use(middlewareInstance.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/providers", func(r chi.Router) {
				attachProviderRoutes(r, providerController, availabilityController)
			})

			r.Route("/bookings", func(r chi.Router) {
				// Booking writes additionally get the blocking
				// limiter: abusive clients hammering TryReserve are
				// shut out for a while instead of just slowed down.
				blockingLimiter := middlewares.NewRateLimiter(
					internalConfig.App.MaxRequests,
					time.Second,
					time.Duration(internalConfig.App.RateLimiterBlockInSeconds)*time.Second,
				)
				r.Use(blockingLimiter.Limit)

				attachBookingRoutes(r, bookingController)
			})
		})
	})
}
