package slots

import (
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
)

// GenerateDayTemplate produces the canonical ordered slot list for one
// day: every half hour from 10:00 through 19:00 inclusive, so 19 slots.
// The template is provider- and date-agnostic; occupancy, blackout and
// past-time exclusions are layered on by the availability resolver.
func GenerateDayTemplate() []models.Slot {
	template := make([]models.Slot, 0, 2*(constvars.SlotDayEndHour-constvars.SlotDayStartHour)+1)
	for hour := constvars.SlotDayStartHour; hour <= constvars.SlotDayEndHour; hour++ {
		for minute := 0; minute < 60; minute += constvars.SlotStepMinutes {
			if hour == constvars.SlotDayEndHour && minute > 0 {
				break
			}
			storageTime := fmt.Sprintf("%02d:%02d", hour, minute)
			template = append(template, models.Slot{
				DisplayTime:     utils.To12Hour(storageTime),
				StorageTime:     storageTime,
				DurationMinutes: constvars.SlotDurationMinutes,
				IsBookable:      true,
				IsOccupied:      false,
			})
		}
	}
	return template
}

// IsWithinSessionHours reports whether storageTime starts inside the
// bookable day, from the first slot's start up to the last slot's end.
func IsWithinSessionHours(storageTime string) bool {
	sessionStart := fmt.Sprintf("%02d:00", constvars.SlotDayStartHour)
	lastSlotStart := fmt.Sprintf("%02d:00", constvars.SlotDayEndHour)
	return utils.IsTimeWithinRange(storageTime, sessionStart, utils.CalculateEndSessionTime(lastSlotStart))
}
