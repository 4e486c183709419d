package routers

import (
	"medibook-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *bookings.BookingController) {
	router.Get("/", bookingController.FindAll)
	router.Post("/", bookingController.Create)
	router.Patch("/{bookingID}/status", bookingController.UpdateStatus)
}
