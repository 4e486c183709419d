package requests

type CreateBooking struct {
	ProviderID string `json:"provider_id" validate:"required"`
	PatientID  string `json:"patient_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required,datetime=15:04"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled completed"`
	Note   string `json:"note"`
}

type BookingQueryParams struct {
	PatientID  string
	ProviderID string
	Date       string
	Page       int
	PageSize   int
}
