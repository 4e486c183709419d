package requests

type Availability struct {
	ProviderID string `validate:"required"`
	Date       string `validate:"required,datetime=2006-01-02"`
}
