package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingProviderIDKey         = "provider_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingBookingIDKey          = "booking_id"
	LoggingBookingDateKey        = "booking_date"
	LoggingBookingTimeKey        = "booking_time"
	LoggingBookingStatusKey      = "booking_status"
	LoggingSlotCountKey          = "slot_count"
	LoggingOccupiedCountKey      = "occupied_count"
	LoggingBookingCountKey       = "booking_count"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingQueueNameKey          = "queue_name"
	LoggingNotificationKindKey   = "notification_kind"
)
