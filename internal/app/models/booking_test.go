package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsActive(t *testing.T) {
	t.Run("Active Statuses Occupy Slots", func(t *testing.T) {
		for _, status := range ActiveBookingStatuses() {
			assert.True(t, status.IsActive(), "status %s", status)
		}
	})

	t.Run("Cancelled And Completed Do Not", func(t *testing.T) {
		assert.False(t, BookingStatusCancelled.IsActive())
		assert.False(t, BookingStatusCompleted.IsActive())
	})
}

func TestBookingStatusCanTransitionTo(t *testing.T) {
	t.Run("Pending To Confirmed", func(t *testing.T) {
		assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
	})

	t.Run("Pending To Cancelled", func(t *testing.T) {
		assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	})

	t.Run("Pending Cannot Complete Directly", func(t *testing.T) {
		assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatusCompleted))
	})

	t.Run("Confirmed To Completed", func(t *testing.T) {
		assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCompleted))
	})

	t.Run("Confirmed To Cancelled", func(t *testing.T) {
		assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	})

	t.Run("Confirmed Cannot Return To Pending", func(t *testing.T) {
		assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusPending))
	})

	t.Run("Terminal Statuses Never Transition", func(t *testing.T) {
		for _, terminal := range []BookingStatus{BookingStatusCancelled, BookingStatusCompleted} {
			for _, next := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted} {
				assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
			}
		}
	})
}

func TestUnavailabilityRecord(t *testing.T) {
	record := &UnavailabilityRecord{
		ProviderID: "provider-1",
		Dates: map[string]DateUnavailability{
			"2025-06-10": {Times: []string{"13:00", "15:30"}},
			"2025-06-11": {FullyUnavailable: true, Times: []string{"10:00"}},
		},
	}

	t.Run("Listed Time Is Blocked", func(t *testing.T) {
		assert.True(t, record.IsTimeUnavailable("2025-06-10", "13:00"))
	})

	t.Run("Unlisted Time Is Open", func(t *testing.T) {
		assert.False(t, record.IsTimeUnavailable("2025-06-10", "14:00"))
	})

	t.Run("Unlisted Date Is Open", func(t *testing.T) {
		assert.False(t, record.IsTimeUnavailable("2025-06-12", "13:00"))
		assert.False(t, record.IsDateFullyUnavailable("2025-06-12"))
	})

	t.Run("Full Day Flag Blocks Every Time", func(t *testing.T) {
		assert.True(t, record.IsDateFullyUnavailable("2025-06-11"))
		assert.True(t, record.IsTimeUnavailable("2025-06-11", "10:00"))
		assert.True(t, record.IsTimeUnavailable("2025-06-11", "18:30"))
	})

	t.Run("Nil Record Means No Exclusions", func(t *testing.T) {
		var absent *UnavailabilityRecord
		assert.False(t, absent.IsDateFullyUnavailable("2025-06-10"))
		assert.False(t, absent.IsTimeUnavailable("2025-06-10", "13:00"))
		assert.True(t, absent.IsAvailableForQuery("2025-06-10", "1:00 PM"))
	})

	t.Run("Query Availability Uses Display Time", func(t *testing.T) {
		assert.False(t, record.IsAvailableForQuery("2025-06-10", "1:00 PM"))
		assert.True(t, record.IsAvailableForQuery("2025-06-10", "2:00 PM"))
	})
}
