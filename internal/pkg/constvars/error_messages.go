package constvars

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientSlotAlreadyBooked             = "this time slot has just been booked, please pick another one"
	ErrClientTimeOutsideSessionHours       = "appointments can only be booked between 10:00 AM and 7:00 PM"
	ErrClientPatientAlreadyBookedThatDate  = "you already have an appointment on this date"
	ErrClientSlotCurrentlyReserved         = "this time slot is being reserved by someone else, please try again"
	ErrClientBookingNotFound               = "appointment not found"
	ErrClientInvalidStatusTransition       = "this appointment can no longer be changed"
	ErrClientStoreUnavailable              = "booking service is temporarily unavailable, please try again"
)

const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevURLParamIDValidationFailed = "failed validating URL param %s"
	ErrDevDocumentNotFound           = "document not found"

	ErrDevSlotAlreadyBooked            = "slot already occupied by an active booking"
	ErrDevTimeOutsideSessionHours      = "requested time falls outside the bookable session window"
	ErrDevPatientAlreadyBookedThatDate = "patient already holds an active booking on the requested date"
	ErrDevLockNotAcquired              = "could not acquire booking lock"
	ErrDevInvalidStatusTransition      = "booking status transition not allowed from %s to %s"
	ErrDevBookingWriteFailed           = "failed to commit booking write"
	ErrDevBookingWriteTimeout          = "booking write exceeded its deadline"

	ErrDevMongoDBFindDocument      = "failed to find document(s) in mongoDB"
	ErrDevMongoDBInsertDocument    = "failed to insert document into mongoDB"
	ErrDevMongoDBUpdateDocument    = "failed to update document in mongoDB"
	ErrDevMongoDBIterateDocuments  = "failed to iterate mongoDB cursor"
	ErrDevMongoDBDuplicateDocument = "duplicate key on insert into mongoDB"

	ErrDevRedisSet           = "failed to set value in redis"
	ErrDevRedisGetNoData     = "failed to get data from redis with key %s"
	ErrDevRedisDelete        = "failed to delete value in redis"
	ErrDevRedisUnlock        = "failed to release redis lock"
	ErrDevQueuePublish       = "failed to publish message to rabbitMQ queue"
	ErrDevQueueConfirmAbsent = "rabbitMQ did not confirm the published message"
)
