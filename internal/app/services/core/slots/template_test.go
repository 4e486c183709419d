package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDayTemplate(t *testing.T) {
	template := GenerateDayTemplate()

	t.Run("Has Nineteen Slots", func(t *testing.T) {
		assert.Len(t, template, 19)
	})

	t.Run("Starts At Ten And Ends At Seven PM", func(t *testing.T) {
		assert.Equal(t, "10:00", template[0].StorageTime)
		assert.Equal(t, "10:00 AM", template[0].DisplayTime)
		assert.Equal(t, "19:00", template[len(template)-1].StorageTime)
		assert.Equal(t, "7:00 PM", template[len(template)-1].DisplayTime)
	})

	t.Run("Storage Times Strictly Ascend", func(t *testing.T) {
		for i := 1; i < len(template); i++ {
			assert.Less(t, template[i-1].StorageTime, template[i].StorageTime)
		}
	})

	t.Run("All Slots Start Bookable And Unoccupied", func(t *testing.T) {
		for _, slot := range template {
			assert.True(t, slot.IsBookable, "slot %s", slot.StorageTime)
			assert.False(t, slot.IsOccupied, "slot %s", slot.StorageTime)
			assert.Equal(t, 30, slot.DurationMinutes)
		}
	})
}

func TestIsWithinSessionHours(t *testing.T) {
	t.Run("First Slot Start Is Bookable", func(t *testing.T) {
		assert.True(t, IsWithinSessionHours("10:00"))
	})

	t.Run("Last Slot Start Is Bookable", func(t *testing.T) {
		assert.True(t, IsWithinSessionHours("19:00"))
	})

	t.Run("Mid Day Time Is Bookable", func(t *testing.T) {
		assert.True(t, IsWithinSessionHours("14:30"))
	})

	t.Run("Before Opening Is Rejected", func(t *testing.T) {
		assert.False(t, IsWithinSessionHours("09:30"))
	})

	t.Run("After Last Slot End Is Rejected", func(t *testing.T) {
		assert.False(t, IsWithinSessionHours("19:30"))
	})
}
