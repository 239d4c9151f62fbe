package draft

import (
	"slices"

	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/pricing"
	"playroom-booking/internal/pkg/ptr"
)

// Snapshot is a detached, read-only copy of a draft.
type Snapshot struct {
	Console        string              `json:"console,omitempty"`
	RoomType       *Room               `json:"roomType,omitempty"`
	Unit           *Unit               `json:"unit,omitempty"`
	UnitPrice      int64               `json:"unitPrice"`
	SelectedGames  []Game              `json:"selectedGames"`
	Date           *calendar.Date      `json:"date,omitempty"`
	StartTime      *calendar.TimeOfDay `json:"startTime,omitempty"`
	Duration       int                 `json:"duration"`
	FoodAndDrinks  []FoodItem          `json:"foodAndDrinks"`
	NumberOfPeople int                 `json:"numberOfPeople"`
	Notes          string              `json:"notes"`
	RewardInfo     *RewardInfo         `json:"rewardInfo,omitempty"`
	Promo          *Promo              `json:"promo,omitempty"`
	ActiveStep     Step                `json:"activeStep"`
	ValidDurations []int               `json:"validDurations,omitempty"`
	Pricing        pricing.Breakdown   `json:"pricing"`
	Subtotal       int64               `json:"subtotal"`
}

func (d *Draft) Snapshot() Snapshot {
	s := Snapshot{
		Console:        d.console,
		RoomType:       cloneRoom(d.room),
		Unit:           cloneUnit(d.unit),
		UnitPrice:      d.unitPrice,
		SelectedGames:  slices.Clone(d.games),
		Duration:       d.duration,
		FoodAndDrinks:  slices.Clone(d.foods),
		NumberOfPeople: d.people,
		Notes:          d.notes,
		RewardInfo:     d.Reward(),
		Promo:          d.Promo(),
		ActiveStep:     d.activeStep,
		ValidDurations: slices.Clone(d.validDurations),
		Pricing:        d.breakdown,
		Subtotal:       d.breakdown.Subtotal,
	}
	if d.date != nil {
		s.Date = ptr.Of(*d.date)
	}
	if d.startTime != nil {
		s.StartTime = ptr.Of(*d.startTime)
	}
	if s.SelectedGames == nil {
		s.SelectedGames = []Game{}
	}
	if s.FoodAndDrinks == nil {
		s.FoodAndDrinks = []FoodItem{}
	}
	return s
}
