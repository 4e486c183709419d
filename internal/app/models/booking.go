package models

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ActiveBookingStatuses are the statuses that occupy a slot for conflict
// purposes. Cancelled and completed bookings never block a slot.
func ActiveBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusApproved,
		BookingStatusBooked,
		BookingStatusConfirmed,
	}
}

func (s BookingStatus) IsActive() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusBooked, BookingStatusConfirmed:
		return true
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// CanTransitionTo enforces the appointment lifecycle:
// pending -> confirmed -> completed, with cancellation allowed from any
// non-terminal status. Approved and booked are provider-side synonyms of
// confirmed and follow the same rules.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusApproved ||
			next == BookingStatusBooked || next == BookingStatusCancelled
	case BookingStatusConfirmed, BookingStatusApproved, BookingStatusBooked:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

type Booking struct {
	ID          string        `bson:"_id,omitempty"`
	ProviderID  string        `bson:"providerId"`
	PatientID   string        `bson:"patientId"`
	Date        string        `bson:"date"`
	Time        string        `bson:"time"`
	Status      BookingStatus `bson:"status"`
	Message     string        `bson:"message,omitempty"`
	CreatedAt   int64         `bson:"createdAt"`
	LastUpdated int64         `bson:"lastUpdated"`
}
