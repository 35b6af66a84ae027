package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DaySlots holds the open slot starts for one calendar day.
//
// A day appears in a horizon only if a DayWindow is configured for its
// weekday. A configured day whose window produced nothing (malformed or too
// short for one meeting) is present with an empty Slots list; a day without
// a window is omitted entirely.
type DaySlots struct {
	Date  time.Time
	Slots []types.TimeString
}

// HasSlots returns true if at least one slot is open on the day
func (d *DaySlots) HasSlots() bool {
	return len(d.Slots) > 0
}
