package draft

import (
	"slices"

	"playroom-booking/internal/domain/calendar"
)

type Step int

const (
	StepConsole  Step = 1
	StepUnit     Step = 2
	StepSchedule Step = 3
	StepPayment  Step = 4
)

func (s Step) IsValid() bool {
	return s >= StepConsole && s <= StepPayment
}

type Game struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MaxVisitors int      `json:"maxVisitors"`
	Consoles    []string `json:"consoles,omitempty"`
}

// Offers treats an empty console list as "any console".
func (r Room) Offers(console string) bool {
	return len(r.Consoles) == 0 || slices.Contains(r.Consoles, console)
}

type Unit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	RoomID    string `json:"roomId"`
	Console   string `json:"console"`
	Games     []Game `json:"games,omitempty"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// Window falls back to def when the catalog omits operating hours.
func (u Unit) Window(def calendar.Window) calendar.Window {
	if u.OpenTime == "" || u.CloseTime == "" {
		return def
	}
	w, err := calendar.ParseWindow(u.OpenTime, u.CloseTime)
	if err != nil {
		return def
	}
	return w
}

func (u Unit) HasGame(id string) bool {
	return slices.ContainsFunc(u.Games, func(g Game) bool { return g.ID == id })
}

type FoodItem struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// RewardInfo is fixed once created; only the merge flag moves.
type RewardInfo struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	OriginalPrice  int64  `json:"originalPrice"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalPrice     int64  `json:"finalPrice"`
	UserRewardID   string `json:"userRewardId"`
	PresetConsole  string `json:"presetConsole"`
	PresetRoom     Room   `json:"presetRoom"`
	PresetUnit     Unit   `json:"presetUnit"`
	PresetDuration int    `json:"presetDuration"`
	PresetVisitors int    `json:"presetVisitors"`

	merged bool
}

// Merged reports whether the unit catalog was already folded into the draft.
func (r *RewardInfo) Merged() bool {
	return r != nil && r.merged
}

type Promo struct {
	Code           string  `json:"code"`
	Percentage     float64 `json:"percentage"`
	DiscountAmount int64   `json:"discountAmount"`
}

// Change names the fields a mutation touched.
type Change uint32

const (
	ChangeConsole Change = 1 << iota
	ChangeRoom
	ChangeUnit
	ChangeGame
	ChangeDate
	ChangeStartTime
	ChangeDuration
	ChangePeople
	ChangeFood
	ChangeNotes
	ChangePromo
	ChangeReward
	ChangeStep
	ChangeDurationSet
)

func (c Change) Has(f Change) bool {
	return c&f != 0
}

func (c Change) IsZero() bool {
	return c == 0
}

// TriggersSlots reports whether slot availability for (unit, date) must be refetched.
func (c Change) TriggersSlots() bool {
	return c.Has(ChangeUnit | ChangeDate | ChangeReward)
}

// TriggersDurations reports whether the duration eligibility key moved.
func (c Change) TriggersDurations() bool {
	return c.Has(ChangeUnit | ChangeDate | ChangeStartTime | ChangeReward)
}

var changeNames = []struct {
	flag Change
	name string
}{
	{ChangeConsole, "console"},
	{ChangeRoom, "roomType"},
	{ChangeUnit, "unit"},
	{ChangeGame, "selectedGames"},
	{ChangeDate, "date"},
	{ChangeStartTime, "startTime"},
	{ChangeDuration, "duration"},
	{ChangePeople, "numberOfPeople"},
	{ChangeFood, "foodAndDrinks"},
	{ChangeNotes, "notes"},
	{ChangePromo, "promo"},
	{ChangeReward, "rewardInfo"},
	{ChangeStep, "activeStep"},
	{ChangeDurationSet, "validDurations"},
}

// Names lists the touched fields by their snapshot json names.
func (c Change) Names() []string {
	out := make([]string, 0, len(changeNames))
	for _, n := range changeNames {
		if c.Has(n.flag) {
			out = append(out, n.name)
		}
	}
	return out
}
