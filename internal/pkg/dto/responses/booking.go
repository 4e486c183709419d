package responses

type Booking struct {
	ID           string `json:"id"`
	ProviderID   string `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	PatientID    string `json:"patient_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	DisplayTime  string `json:"display_time"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	CreatedAt    int64  `json:"created_at"`
	LastUpdated  int64  `json:"last_updated"`
}
