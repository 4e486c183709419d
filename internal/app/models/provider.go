package models

import (
	"medibook-service/internal/pkg/utils"
)

type Provider struct {
	ID             string `bson:"_id,omitempty"`
	DisplayName    string `bson:"displayName"`
	Specialization string `bson:"specialization"`
}

// DateUnavailability is the per-date entry of a provider's blackout
// calendar: either the whole day is blocked, or a set of storage times is.
type DateUnavailability struct {
	FullyUnavailable bool     `bson:"fullyUnavailable"`
	Times            []string `bson:"times,omitempty"`
}

// UnavailabilityRecord is a provider-authored calendar of blackout dates
// and times, keyed by ISO date. The scheduling core only reads it; a nil
// record means the provider declared no exclusions, so everything is
// available.
type UnavailabilityRecord struct {
	ProviderID string                        `bson:"_id,omitempty"`
	Dates      map[string]DateUnavailability `bson:"dates"`
}

func (r *UnavailabilityRecord) IsDateFullyUnavailable(date string) bool {
	if r == nil {
		return false
	}
	entry, ok := r.Dates[date]
	return ok && entry.FullyUnavailable
}

// IsTimeUnavailable reports whether storageTime is blocked on date. The
// full-day flag takes precedence over any per-time entries also present.
func (r *UnavailabilityRecord) IsTimeUnavailable(date, storageTime string) bool {
	if r == nil {
		return false
	}
	entry, ok := r.Dates[date]
	if !ok {
		return false
	}
	if entry.FullyUnavailable {
		return true
	}
	for _, t := range entry.Times {
		if t == storageTime {
			return true
		}
	}
	return false
}

func (r *UnavailabilityRecord) IsAvailableForQuery(date, displayTime string) bool {
	return !r.IsTimeUnavailable(date, utils.To24Hour(displayTime))
}
