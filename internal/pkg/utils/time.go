package utils

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

// To24Hour converts a 12-hour display time such as "2:30 PM" into its
// 24-hour storage form "14:30". Malformed input is returned unchanged:
// display formatting must never abort a scheduling query, the booking
// guard is the correctness backstop.
func To24Hour(displayTime string) string {
	parts := strings.Split(displayTime, " ")
	if len(parts) != 2 {
		return displayTime
	}

	timeParts := strings.Split(parts[0], ":")
	if len(timeParts) != 2 {
		return displayTime
	}

	hour, err := strconv.Atoi(timeParts[0])
	if err != nil {
		return displayTime
	}
	minute := timeParts[1]
	meridiem := strings.ToUpper(parts[1])

	switch {
	case meridiem == constvars.MeridiemAM && hour == 12:
		hour = 0
	case meridiem == constvars.MeridiemPM && hour != 12:
		hour += 12
	}

	return fmt.Sprintf("%02d:%s", hour, minute)
}

// To12Hour is the inverse of To24Hour: "14:30" becomes "2:30 PM".
// Malformed input degrades the same soft way.
func To12Hour(storageTime string) string {
	timeParts := strings.Split(storageTime, ":")
	if len(timeParts) != 2 {
		return storageTime
	}

	hour, err := strconv.Atoi(timeParts[0])
	if err != nil {
		return storageTime
	}
	minute := timeParts[1]

	switch {
	case hour == 0:
		return fmt.Sprintf("12:%s %s", minute, constvars.MeridiemAM)
	case hour == 12:
		return fmt.Sprintf("12:%s %s", minute, constvars.MeridiemPM)
	case hour < 12:
		return fmt.Sprintf("%d:%s %s", hour, minute, constvars.MeridiemAM)
	default:
		return fmt.Sprintf("%d:%s %s", hour-12, minute, constvars.MeridiemPM)
	}
}

func ParseISODate(date string) (time.Time, error) {
	return time.Parse(constvars.DateLayoutISO, date)
}

// IsSlotInPast reports whether a slot at storageTime on date has already
// started relative to now. Only slots on now's own calendar day are ever
// considered past; a stale query date is a caller-level concern.
func IsSlotInPast(date, storageTime string, now time.Time) bool {
	if date != now.Format(constvars.DateLayoutISO) {
		return false
	}

	slotClock, err := time.Parse(constvars.StorageTimeLayout, storageTime)
	if err != nil {
		return false
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	slotMinutes := slotClock.Hour()*60 + slotClock.Minute()
	return slotMinutes < nowMinutes
}

func IsTimeWithinRange(requestedTime, startTime, endTime string) bool {
	requested, _ := time.Parse(constvars.StorageTimeLayout, requestedTime)
	start, _ := time.Parse(constvars.StorageTimeLayout, startTime)
	end, _ := time.Parse(constvars.StorageTimeLayout, endTime)

	return requested.Equal(start) || (requested.After(start) && requested.Before(end))
}

func CalculateEndSessionTime(startTime string) string {
	start, _ := time.Parse(constvars.StorageTimeLayout, startTime)
	end := start.Add(constvars.SlotDurationMinutes * time.Minute)
	return end.Format(constvars.StorageTimeLayout)
}
