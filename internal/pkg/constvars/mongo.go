package constvars

const (
	MongoCollectionBookings         = "bookings"
	MongoCollectionProviders        = "providers"
	MongoCollectionUnavailabilities = "unavailabilities"
)
