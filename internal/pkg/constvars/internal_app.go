package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceProviders = "providers"
	ResourceBookings  = "bookings"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	ResponseUnknown        = "unknown"
)

const (
	URLParamProviderID = "providerID"
	URLParamBookingID  = "bookingID"

	QueryParamDate       = "date"
	QueryParamPatientID  = "patient_id"
	QueryParamProviderID = "provider_id"
	QueryParamPage       = "page"
	QueryParamPageSize   = "page_size"
)

const (
	PaginationDefaultPage     = 1
	PaginationDefaultPageSize = 10
)
