package constvars

const (
	GetAvailabilitySuccessMessage   = "Successfully retrieved availability"
	GetProviderSuccessMessage       = "Successfully retrieved provider"
	GetUnavailabilitySuccessMessage = "Successfully retrieved unavailability calendar"
	GetBookingsSuccessMessage       = "Successfully retrieved appointments"
	CreateBookingSuccessMessage     = "Successfully booked the appointment"
	UpdateBookingSuccessMessage     = "Successfully updated the appointment"
)
