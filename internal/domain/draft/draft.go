package draft

import (
	"slices"

	"playroom-booking/internal/domain/availability"
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/pricing"
	"playroom-booking/internal/domain/promo"
	"playroom-booking/internal/pkg/ptr"

	"github.com/jinzhu/copier"
)

// Draft is the single mutable booking configuration of a session. Setters are the
// only mutation path; each one recomputes pricing and notifies subscribers.
// Draft is not safe for concurrent use; the owning session serializes access.
type Draft struct {
	console   string
	room      *Room
	unit      *Unit
	unitPrice int64
	games     []Game

	date      *calendar.Date
	startTime *calendar.TimeOfDay
	duration  int

	foods  []FoodItem
	people int
	notes  string

	reward   *RewardInfo
	promo    *Promo
	discount promo.Discount

	validDurations []int
	durationsKnown bool

	activeStep    Step
	defaultWindow calendar.Window
	breakdown     pricing.Breakdown

	observers map[int]func(Change)
	nextObs   int
}

func New(defaultWindow calendar.Window) *Draft {
	d := &Draft{
		activeStep:    StepConsole,
		defaultWindow: defaultWindow,
		observers:     map[int]func(Change){},
	}
	d.recompute()
	return d
}

// Subscribe registers fn for every non-empty change. Observers run synchronously
// while the caller holds the session, so they must not mutate the draft.
func (d *Draft) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := d.nextObs
	d.nextObs++
	d.observers[id] = fn
	return func() { delete(d.observers, id) }
}

func (d *Draft) commit(c Change) Change {
	d.recompute()
	if c.IsZero() {
		return c
	}
	for _, fn := range d.observers {
		fn(c)
	}
	return c
}

func (d *Draft) IsRewardMode() bool {
	return d.reward != nil
}

// ---------------------------------------------------------------------------
// step gating
// ---------------------------------------------------------------------------

func (d *Draft) IsStepAccessible(step Step) bool {
	switch step {
	case StepConsole:
		return true
	case StepUnit:
		return d.console != ""
	case StepSchedule:
		return d.console != "" && d.unit != nil && len(d.games) > 0
	case StepPayment:
		return d.console != "" && d.unit != nil && len(d.games) > 0 &&
			d.startTime != nil && d.duration > 0
	default:
		return false
	}
}

func (d *Draft) IsStepComplete(step Step) bool {
	switch step {
	case StepConsole:
		return d.console != ""
	case StepUnit:
		return d.unit != nil && len(d.games) > 0
	case StepSchedule:
		return d.date != nil && d.startTime != nil && d.duration > 0
	case StepPayment:
		return d.IsStepComplete(StepSchedule) && d.people > 0
	default:
		return false
	}
}

func (d *Draft) GoToStep(step Step) Change {
	if !step.IsValid() || step == d.activeStep || !d.IsStepAccessible(step) {
		return d.commit(0)
	}
	d.activeStep = step
	return d.commit(ChangeStep)
}

// ---------------------------------------------------------------------------
// configuration setters
// ---------------------------------------------------------------------------

func (d *Draft) SetNumberOfPeople(n int) Change {
	if d.IsRewardMode() || n <= 0 || n == d.people {
		return d.commit(0)
	}
	d.people = n
	c := ChangePeople
	if d.room != nil || d.unit != nil || len(d.games) > 0 {
		d.clearRoom()
		c |= ChangeRoom | ChangeUnit | ChangeGame
	}
	return d.commit(c)
}

func (d *Draft) SetConsole(console string) Change {
	if d.IsRewardMode() || console == "" || console == d.console {
		return d.commit(0)
	}
	d.console = console
	d.clearRoom()
	d.foods = nil
	return d.commit(ChangeConsole | ChangeRoom | ChangeUnit | ChangeGame | ChangeFood)
}

func (d *Draft) SetRoomType(r Room) Change {
	if d.IsRewardMode() || d.console == "" || !r.Offers(d.console) || !d.fitsVisitors(r) {
		return d.commit(0)
	}
	if d.room != nil && d.room.ID == r.ID {
		return d.commit(0)
	}
	room := r
	d.room = &room
	d.clearUnit()
	d.foods = nil
	return d.commit(ChangeRoom | ChangeUnit | ChangeGame | ChangeFood)
}

func (d *Draft) SetUnit(u Unit) Change {
	if d.IsRewardMode() || d.room == nil || u.RoomID != d.room.ID || u.Console != d.console {
		return d.commit(0)
	}
	if d.unit != nil && d.unit.ID == u.ID {
		return d.commit(0)
	}
	unit := u
	d.unit = &unit
	d.unitPrice = u.Price
	d.games = nil
	d.invalidateDurations()
	return d.commit(ChangeUnit | ChangeGame)
}

// SelectGame keeps at most one game. Until the unit's catalog is known any game is accepted.
func (d *Draft) SelectGame(g Game) Change {
	if d.unit == nil || g.ID == "" {
		return d.commit(0)
	}
	if len(d.unit.Games) > 0 && !d.unit.HasGame(g.ID) {
		return d.commit(0)
	}
	if len(d.games) == 1 && d.games[0].ID == g.ID {
		return d.commit(0)
	}
	d.games = []Game{g}
	return d.commit(ChangeGame)
}

func (d *Draft) ClearGame() Change {
	if len(d.games) == 0 {
		return d.commit(0)
	}
	d.games = nil
	return d.commit(ChangeGame)
}

func (d *Draft) SetDate(date calendar.Date) Change {
	if date.IsZero() || (d.date != nil && *d.date == date) {
		return d.commit(0)
	}
	d.date = &date
	c := ChangeDate
	if d.startTime != nil {
		d.startTime = nil
		c |= ChangeStartTime
	}
	if !d.IsRewardMode() && d.duration != 0 {
		d.duration = 0
		c |= ChangeDuration
	}
	d.invalidateDurations()
	return d.commit(c)
}

// SetStartTime clears a duration that no longer fits before closing.
func (d *Draft) SetStartTime(t calendar.TimeOfDay) Change {
	if d.startTime != nil && *d.startTime == t {
		if d.durationsKnown {
			return d.commit(0)
		}
		// picking the same time again asks for the durations once more
		return d.commit(ChangeStartTime)
	}
	d.startTime = &t
	c := ChangeStartTime
	if !d.IsRewardMode() && d.duration > 0 && d.unit != nil {
		if d.duration > d.unit.Window(d.defaultWindow).MaxHoursFrom(t) {
			d.duration = 0
			c |= ChangeDuration
		}
	}
	d.invalidateDurations()
	return d.commit(c)
}

// SetDuration accepts only values from the latest eligibility set.
func (d *Draft) SetDuration(hours int) Change {
	if d.IsRewardMode() || hours <= 0 || hours == d.duration {
		return d.commit(0)
	}
	if !d.durationsKnown || !slices.Contains(d.validDurations, hours) {
		return d.commit(0)
	}
	d.duration = hours
	return d.commit(ChangeDuration)
}

// ReconcileDurations stores a freshly fetched eligibility set. In reward mode the
// preset duration is part of the set and never cleared.
func (d *Draft) ReconcileDurations(set []int) Change {
	normalized := availability.Normalize(set)
	if d.IsRewardMode() {
		normalized = availability.WithRewardDuration(normalized, d.reward.PresetDuration)
	}
	d.validDurations = normalized
	d.durationsKnown = true
	c := ChangeDurationSet
	if !d.IsRewardMode() && d.duration > 0 && !slices.Contains(normalized, d.duration) {
		d.duration = 0
		c |= ChangeDuration
	}
	return d.commit(c)
}

func (d *Draft) UpsertFood(item FoodItem, quantity int) Change {
	if item.ItemID == "" {
		return d.commit(0)
	}
	if quantity <= 0 {
		return d.RemoveFood(item.ItemID)
	}
	item.Quantity = quantity
	if i := d.foodIndex(item.ItemID); i >= 0 {
		if d.foods[i] == item {
			return d.commit(0)
		}
		d.foods[i] = item
	} else {
		d.foods = append(d.foods, item)
	}
	return d.commit(ChangeFood)
}

func (d *Draft) RemoveFood(itemID string) Change {
	i := d.foodIndex(itemID)
	if i < 0 {
		return d.commit(0)
	}
	d.foods = slices.Delete(d.foods, i, i+1)
	return d.commit(ChangeFood)
}

func (d *Draft) SetNotes(notes string) Change {
	if notes == d.notes {
		return d.commit(0)
	}
	d.notes = notes
	return d.commit(ChangeNotes)
}

// ---------------------------------------------------------------------------
// promo
// ---------------------------------------------------------------------------

func (d *Draft) ApplyPromo(code promo.Code, discount promo.Discount) Change {
	d.promo = &Promo{Code: code.String(), Percentage: discount.PercentOff()}
	d.discount = discount
	return d.commit(ChangePromo)
}

func (d *Draft) RemovePromo() Change {
	if d.promo == nil {
		return d.commit(0)
	}
	d.promo = nil
	d.discount = promo.Discount{}
	return d.commit(ChangePromo)
}

// ---------------------------------------------------------------------------
// reward
// ---------------------------------------------------------------------------

// SeedReward fixes console, room, unit, duration, visitors and price from a redeemed
// reward. The unit carries only what the reward knows until MergeRewardUnit runs.
func (d *Draft) SeedReward(info RewardInfo) Change {
	if d.IsRewardMode() {
		return d.commit(0)
	}
	info.merged = false
	d.reward = &info

	room := info.PresetRoom
	unit := info.PresetUnit
	unit.Price = info.FinalPrice
	if unit.Console == "" {
		unit.Console = info.PresetConsole
	}
	if unit.RoomID == "" {
		unit.RoomID = room.ID
	}

	d.console = info.PresetConsole
	d.room = &room
	d.unit = &unit
	d.unitPrice = info.FinalPrice
	d.games = nil
	d.duration = info.PresetDuration
	d.people = info.PresetVisitors
	d.validDurations = availability.Normalize([]int{info.PresetDuration})
	d.durationsKnown = true

	return d.commit(ChangeReward | ChangeConsole | ChangeRoom | ChangeUnit | ChangeGame |
		ChangeDuration | ChangePeople)
}

// MergeRewardUnit folds the catalog entry for the preset unit into the draft once per
// reward, keeping the reward's name and price, and moves on to game selection.
func (d *Draft) MergeRewardUnit(catalog Unit) (Change, bool) {
	if d.reward == nil || d.reward.merged || d.unit == nil || catalog.ID != d.reward.PresetUnit.ID {
		return d.commit(0), false
	}

	merged := *d.unit
	if err := copier.CopyWithOption(&merged, &catalog, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return d.commit(0), false
	}
	if d.reward.PresetUnit.Name != "" {
		merged.Name = d.reward.PresetUnit.Name
	}
	merged.Price = d.reward.FinalPrice
	merged.Console = d.console
	merged.RoomID = d.room.ID

	d.unit = &merged
	d.reward.merged = true
	c := ChangeUnit | ChangeReward
	if d.activeStep < StepUnit {
		d.activeStep = StepUnit
		c |= ChangeStep
	}
	return d.commit(c), true
}

// ---------------------------------------------------------------------------
// read access
// ---------------------------------------------------------------------------

// FilterRooms keeps rooms large enough for the party.
func (d *Draft) FilterRooms(rooms []Room) []Room {
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if d.fitsVisitors(r) {
			out = append(out, r)
		}
	}
	return out
}

func (d *Draft) Console() string { return d.console }
func (d *Draft) Room() *Room { return cloneRoom(d.room) }
func (d *Draft) Unit() *Unit { return cloneUnit(d.unit) }
func (d *Draft) UnitPrice() int64 { return d.unitPrice }
func (d *Draft) Games() []Game { return slices.Clone(d.games) }
func (d *Draft) Duration() int { return d.duration }
func (d *Draft) NumberOfPeople() int { return d.people }
func (d *Draft) Notes() string { return d.notes }
func (d *Draft) Foods() []FoodItem { return slices.Clone(d.foods) }
func (d *Draft) ActiveStep() Step { return d.activeStep }
func (d *Draft) Subtotal() int64 { return d.breakdown.Subtotal }
func (d *Draft) Breakdown() pricing.Breakdown { return d.breakdown }
func (d *Draft) DefaultWindow() calendar.Window { return d.defaultWindow }
func (d *Draft) ValidDurations() ([]int, bool) { return slices.Clone(d.validDurations), d.durationsKnown }
func (d *Draft) Date() (calendar.Date, bool) { return deref(d.date) }
func (d *Draft) StartTime() (calendar.TimeOfDay, bool) { return deref(d.startTime) }

func (d *Draft) Reward() *RewardInfo {
	if d.reward == nil {
		return nil
	}
	return ptr.Of(*d.reward)
}

func (d *Draft) Promo() *Promo {
	if d.promo == nil {
		return nil
	}
	return ptr.Of(*d.promo)
}

// ---------------------------------------------------------------------------
// internals
// ---------------------------------------------------------------------------

func (d *Draft) recompute() {
	in := pricing.Input{
		UnitPrice: d.unitPrice,
		Duration:  d.duration,
		HasUnit:   d.unit != nil,
		Discount:  d.discount,
	}
	if d.reward != nil {
		in.RewardFinalPrice = ptr.Of(d.reward.FinalPrice)
	}
	for _, f := range d.foods {
		in.Items = append(in.Items, pricing.LineItem{UnitPrice: f.UnitPrice, Quantity: f.Quantity})
	}
	d.breakdown = pricing.Compute(in)
	if d.promo != nil {
		d.promo.DiscountAmount = d.breakdown.Discount
	}
}

func (d *Draft) clearRoom() {
	d.room = nil
	d.clearUnit()
}

func (d *Draft) clearUnit() {
	d.unit = nil
	d.unitPrice = 0
	d.games = nil
	d.invalidateDurations()
}

func (d *Draft) invalidateDurations() {
	if d.IsRewardMode() {
		return
	}
	d.validDurations = nil
	d.durationsKnown = false
}

func (d *Draft) fitsVisitors(r Room) bool {
	return d.people <= 0 || r.MaxVisitors >= d.people
}

func (d *Draft) foodIndex(itemID string) int {
	return slices.IndexFunc(d.foods, func(f FoodItem) bool { return f.ItemID == itemID })
}

func cloneRoom(r *Room) *Room {
	if r == nil {
		return nil
	}
	c := *r
	c.Consoles = slices.Clone(r.Consoles)
	return &c
}

func cloneUnit(u *Unit) *Unit {
	if u == nil {
		return nil
	}
	c := *u
	c.Games = slices.Clone(u.Games)
	return &c
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
