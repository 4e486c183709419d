package constvars

// Day template boundaries. Both endpoints are slot start times, so the
// template runs 10:00, 10:30, ..., 19:00.
const (
	SlotDayStartHour    = 10
	SlotDayEndHour      = 19
	SlotStepMinutes     = 30
	SlotDurationMinutes = 30
)

const (
	DateLayoutISO     = "2006-01-02"
	StorageTimeLayout = "15:04"
	MeridiemAM        = "AM"
	MeridiemPM        = "PM"
)

const (
	BookingLockKeyFormat           = "booking_lock:%s:%s"
	BookingLockExpirationInSeconds = 10

	ProviderProfileCacheKeyFormat    = "provider_profile:%s"
	ProviderProfileCacheTTLInMinutes = 5

	ProviderPlaceholderDisplayName    = "Healthcare Provider"
	ProviderPlaceholderSpecialization = "General"
)
