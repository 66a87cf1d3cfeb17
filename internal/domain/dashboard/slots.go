package dashboard

import (
	"time"

	"github.com/google/uuid"
)

const slotWindowDays = 14

// GenerateAvailableSlots produces the synthetic open scheduling slots
// for the 14 calendar days following now: two 60-minute blocks per
// weekday, 10:00-11:00 and 14:00-15:00 local time, none on weekends.
// The result is deterministic given now (slot ids aside) and performs
// no collision checking against booked interviews.
func GenerateAvailableSlots(now time.Time) []Slot {
	slots := make([]Slot, 0, slotWindowDays*2)
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	for i := 1; i <= slotWindowDays; i++ {
		date := today.AddDate(0, 0, i)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		slots = append(slots,
			slotAt(date, 10),
			slotAt(date, 14),
		)
	}
	return slots
}

func slotAt(date time.Time, hour int) Slot {
	start := date.Add(time.Duration(hour) * time.Hour)
	return Slot{
		ID:    uuid.NewString(),
		Title: "Available",
		Start: start,
		End:   start.Add(time.Hour),
		Type:  "available",
	}
}
