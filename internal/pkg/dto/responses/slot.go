package responses

type Slot struct {
	DisplayTime     string `json:"display_time"`
	StorageTime     string `json:"storage_time"`
	DurationMinutes int    `json:"duration_minutes"`
	IsBookable      bool   `json:"is_bookable"`
	IsOccupied      bool   `json:"is_occupied"`
}

type Availability struct {
	ProviderID string `json:"provider_id"`
	Date       string `json:"date"`
	Slots      []Slot `json:"slots"`
}
