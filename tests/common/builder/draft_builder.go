//go:build unit || e2e

package builder

import (
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
)

// DraftBuilder walks a fresh draft through the normal flow. Zero-valued fields are
// skipped, so a builder can stop at any step.
type DraftBuilder struct {
	People    int
	Console   string
	Room      draft.Room
	Unit      draft.Unit
	Game      draft.Game
	Date      string
	StartTime string
	Durations []int
	Duration  int
	Foods     []draft.FoodItem
	Window    calendar.Window
}

func NewDraftBuilder() *DraftBuilder {
	room := NewRoom()
	return &DraftBuilder{
		People:    2,
		Console:   "PS5",
		Room:      room,
		Unit:      NewUnit(room),
		Game:      draft.Game{ID: "game-fc25", Name: "EA FC 25"},
		Date:      "2026-10-20",
		StartTime: "14:00",
		Durations: []int{1, 2, 3},
		Duration:  2,
		Window:    DefaultWindow(),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) Build() *draft.Draft {
	d := draft.New(b.Window)
	if b.People > 0 {
		d.SetNumberOfPeople(b.People)
	}
	if b.Console != "" {
		d.SetConsole(b.Console)
	}
	if b.Room.ID != "" {
		d.SetRoomType(b.Room)
	}
	if b.Unit.ID != "" {
		d.SetUnit(b.Unit)
	}
	if b.Game.ID != "" {
		d.SelectGame(b.Game)
	}
	if b.Date != "" {
		d.SetDate(mustDate(b.Date))
	}
	if b.StartTime != "" {
		d.SetStartTime(calendar.MustTimeOfDay(b.StartTime))
	}
	if b.Durations != nil {
		d.ReconcileDurations(b.Durations)
	}
	if b.Duration > 0 {
		d.SetDuration(b.Duration)
	}
	for _, f := range b.Foods {
		d.UpsertFood(f, f.Quantity)
	}
	return d
}

// BuildReward seeds a draft from info, merges the builder's unit as the catalog
// entry and fills in game and schedule.
func (b *DraftBuilder) BuildReward(info draft.RewardInfo) *draft.Draft {
	d := draft.New(b.Window)
	d.SeedReward(info)
	if b.Unit.ID != "" {
		d.MergeRewardUnit(b.Unit)
	}
	if b.Game.ID != "" {
		d.SelectGame(b.Game)
	}
	if b.Date != "" {
		d.SetDate(mustDate(b.Date))
	}
	if b.StartTime != "" {
		d.SetStartTime(calendar.MustTimeOfDay(b.StartTime))
	}
	return d
}

func DefaultWindow() calendar.Window {
	return calendar.Window{Open: calendar.MustTimeOfDay("10:00"), Close: calendar.MustTimeOfDay("22:00")}
}

func NewRoom() draft.Room {
	return draft.Room{ID: "room-vip", Name: "VIP Room", MaxVisitors: 4, Consoles: []string{"PS5", "XBOX"}}
}

func NewUnit(room draft.Room) draft.Unit {
	return draft.Unit{
		ID:      "unit-vip-1",
		Name:    "VIP PS5 #1",
		Price:   50000,
		RoomID:  room.ID,
		Console: "PS5",
		Games: []draft.Game{
			{ID: "game-fc25", Name: "EA FC 25"},
			{ID: "game-tekken8", Name: "Tekken 8"},
		},
		OpenTime:  "10:00",
		CloseTime: "22:00",
	}
}

func NewRewardInfo() draft.RewardInfo {
	room := NewRoom()
	return draft.RewardInfo{
		Name:           "Free 2 Hours VIP",
		Description:    "Redeemed with loyalty points",
		OriginalPrice:  100000,
		DiscountAmount: 100000,
		FinalPrice:     0,
		UserRewardID:   "ur-123",
		PresetConsole:  "PS5",
		PresetRoom:     room,
		PresetUnit:     draft.Unit{ID: "unit-vip-1", Name: "Reward VIP PS5"},
		PresetDuration: 2,
		PresetVisitors: 2,
	}
}

func NewFood(id string, price int64, qty int) draft.FoodItem {
	return draft.FoodItem{ItemID: id, Name: "Item " + id, UnitPrice: price, Quantity: qty}
}

func mustDate(s string) calendar.Date {
	d, err := calendar.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func MustDate(s string) calendar.Date {
	return mustDate(s)
}

func MustTimeOfDay(s string) calendar.TimeOfDay {
	return calendar.MustTimeOfDay(s)
}
