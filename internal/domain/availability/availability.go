package availability

import (
	"slices"
	"time"

	"playroom-booking/internal/domain/calendar"
)

// DayKey identifies a month of day availability for one unit.
type DayKey struct {
	UnitID string
	Month  calendar.Date // first day of the month
}

func NewDayKey(unitID string, anyDay calendar.Date) DayKey {
	return DayKey{UnitID: unitID, Month: anyDay.MonthStart()}
}

func (k DayKey) IsZero() bool { return k.UnitID == "" || k.Month.IsZero() }

// Range is the inclusive date span sent upstream.
func (k DayKey) Range() (start, end calendar.Date) {
	return k.Month, k.Month.MonthEnd()
}

type SlotKey struct {
	UnitID string
	Date   calendar.Date
}

func (k SlotKey) IsZero() bool { return k.UnitID == "" || k.Date.IsZero() }

type DurationKey struct {
	UnitID    string
	Date      calendar.Date
	StartTime calendar.TimeOfDay
}

func (k DurationKey) IsZero() bool { return k.UnitID == "" || k.Date.IsZero() }

type Day struct {
	Date          calendar.Date `json:"date"`
	IsFullyBooked bool          `json:"isFullyBooked"`
}

type Slot struct {
	Time        calendar.TimeOfDay `json:"time"`
	IsAvailable bool               `json:"isAvailable"`
}

// FullyBooked maps ISO dates to their booked flag.
func FullyBooked(days []Day) map[string]bool {
	out := make(map[string]bool, len(days))
	for _, d := range days {
		out[d.Date.String()] = d.IsFullyBooked
	}
	return out
}

// SynthesizeSlots lists every start in the window as available.
func SynthesizeSlots(w calendar.Window) []Slot {
	starts := w.Starts()
	out := make([]Slot, 0, len(starts))
	for _, t := range starts {
		out = append(out, Slot{Time: t, IsAvailable: true})
	}
	return out
}

// MergeSlots overlays server answers on the synthesized grid. Server slots outside
// the grid are dropped.
func MergeSlots(synth, server []Slot) []Slot {
	byTime := make(map[int]bool, len(server))
	for _, s := range server {
		byTime[s.Time.Minutes()%(24*60)] = s.IsAvailable
	}
	out := slices.Clone(synth)
	for i := range out {
		if avail, ok := byTime[out[i].Time.Minutes()%(24*60)]; ok {
			out[i].IsAvailable = avail
		}
	}
	return out
}

// ApplyPastGuard disables slots that start strictly before now when date is today in
// now's location. Slots past midnight belong to the next day and are never guarded.
func ApplyPastGuard(slots []Slot, date calendar.Date, now time.Time) []Slot {
	out := slices.Clone(slots)
	if date != calendar.DateOf(now) {
		return out
	}
	for i := range out {
		if out[i].Time.Minutes() >= 24*60 {
			continue
		}
		if calendar.At(date, out[i].Time, now.Location()).Before(now) {
			out[i].IsAvailable = false
		}
	}
	return out
}

// Normalize sorts ascending and drops duplicates and non-positive hours.
func Normalize(set []int) []int {
	out := slices.DeleteFunc(slices.Clone(set), func(h int) bool { return h <= 0 })
	slices.Sort(out)
	return slices.Compact(out)
}

// WithRewardDuration adds the reward's preset even when the server did not list it.
func WithRewardDuration(set []int, preset int) []int {
	return Normalize(append(slices.Clone(set), preset))
}
