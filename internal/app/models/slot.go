package models

import "time"

// Slot is a 30-minute booking opportunity on a given day. Slots are
// regenerated per query and never persisted.
type Slot struct {
	DisplayTime     string
	StorageTime     string
	DurationMinutes int
	IsBookable      bool
	IsOccupied      bool
}

// AvailabilityQuery carries everything Resolve needs, including the
// observation instant, so resolution is a pure function of its inputs.
type AvailabilityQuery struct {
	ProviderID string
	Date       string
	Now        time.Time
}
