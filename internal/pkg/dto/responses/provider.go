package responses

type Provider struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	Specialization string `json:"specialization"`
}

type DateUnavailability struct {
	Date             string   `json:"date"`
	FullyUnavailable bool     `json:"fully_unavailable"`
	UnavailableTimes []string `json:"unavailable_times,omitempty"`
}

type Unavailability struct {
	ProviderID string               `json:"provider_id"`
	Dates      []DateUnavailability `json:"dates"`
}
