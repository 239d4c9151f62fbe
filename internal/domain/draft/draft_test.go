//go:build unit

package draft_test

import (
	"testing"

	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/promo"
	"playroom-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepGating(t *testing.T) {
	type testCase struct {
		name       string
		mutate     func(*builder.DraftBuilder)
		accessible map[draft.Step]bool
		complete   map[draft.Step]bool
	}

	cases := []testCase{
		{
			name:       "empty draft",
			mutate:     func(b *builder.DraftBuilder) { *b = builder.DraftBuilder{Window: builder.DefaultWindow()} },
			accessible: map[draft.Step]bool{draft.StepConsole: true, draft.StepUnit: false, draft.StepSchedule: false, draft.StepPayment: false},
			complete:   map[draft.Step]bool{draft.StepConsole: false, draft.StepUnit: false, draft.StepSchedule: false, draft.StepPayment: false},
		},
		{
			name: "console only",
			mutate: func(b *builder.DraftBuilder) {
				b.Room = draft.Room{}
				b.Unit = draft.Unit{}
				b.Game = draft.Game{}
				b.StartTime = ""
				b.Durations = nil
				b.Duration = 0
			},
			accessible: map[draft.Step]bool{draft.StepUnit: true, draft.StepSchedule: false},
			complete:   map[draft.Step]bool{draft.StepConsole: true, draft.StepUnit: false},
		},
		{
			name:       "unit without game keeps schedule locked",
			mutate:     func(b *builder.DraftBuilder) { b.Game = draft.Game{} },
			accessible: map[draft.Step]bool{draft.StepSchedule: false, draft.StepPayment: false},
			complete:   map[draft.Step]bool{draft.StepUnit: false},
		},
		{
			name:       "fully configured",
			mutate:     func(*builder.DraftBuilder) {},
			accessible: map[draft.Step]bool{draft.StepUnit: true, draft.StepSchedule: true, draft.StepPayment: true},
			complete:   map[draft.Step]bool{draft.StepConsole: true, draft.StepUnit: true, draft.StepSchedule: true, draft.StepPayment: true},
		},
		{
			name:       "missing duration locks payment",
			mutate:     func(b *builder.DraftBuilder) { b.Duration = 0 },
			accessible: map[draft.Step]bool{draft.StepSchedule: true, draft.StepPayment: false},
			complete:   map[draft.Step]bool{draft.StepSchedule: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := builder.NewDraftBuilder().With(tc.mutate).Build()
			for step, want := range tc.accessible {
				assert.Equal(t, want, d.IsStepAccessible(step), "accessible(%d)", step)
			}
			for step, want := range tc.complete {
				assert.Equal(t, want, d.IsStepComplete(step), "complete(%d)", step)
			}
		})
	}

	t.Run("GoToStep ignores inaccessible steps", func(t *testing.T) {
		d := draft.New(builder.DefaultWindow())
		assert.True(t, d.GoToStep(draft.StepSchedule).IsZero())
		assert.Equal(t, draft.StepConsole, d.ActiveStep())

		d.SetConsole("PS5")
		assert.True(t, d.GoToStep(draft.StepUnit).Has(draft.ChangeStep))
		assert.Equal(t, draft.StepUnit, d.ActiveStep())
	})
}

func TestCascadingResets(t *testing.T) {
	t.Run("changing console resets room, unit, games, price and food", func(t *testing.T) {
		d := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.Foods = []draft.FoodItem{builder.NewFood("fnb-cola", 10000, 2)}
		}).Build()

		c := d.SetConsole("XBOX")

		assert.True(t, c.Has(draft.ChangeConsole|draft.ChangeRoom|draft.ChangeFood))
		assert.Nil(t, d.Room())
		assert.Nil(t, d.Unit())
		assert.Empty(t, d.Games())
		assert.Zero(t, d.UnitPrice())
		assert.Empty(t, d.Foods())
	})

	t.Run("changing number of people resets room, unit, games and price", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()

		d.SetNumberOfPeople(3)

		assert.Equal(t, 3, d.NumberOfPeople())
		assert.Nil(t, d.Room())
		assert.Nil(t, d.Unit())
		assert.Empty(t, d.Games())
		assert.Zero(t, d.UnitPrice())
		assert.Equal(t, "PS5", d.Console())
	})

	t.Run("same value is a no-op", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()
		assert.True(t, d.SetConsole("PS5").IsZero())
		assert.True(t, d.SetNumberOfPeople(2).IsZero())
		assert.NotNil(t, d.Unit())
	})

	t.Run("changing unit resets games and picks up the unit price", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()
		other := builder.NewUnit(builder.NewRoom())
		other.ID = "unit-vip-2"
		other.Price = 60000

		d.SetUnit(other)

		assert.Empty(t, d.Games())
		assert.Equal(t, int64(60000), d.UnitPrice())
	})

	t.Run("changing date resets start time and duration", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()

		c := d.SetDate(builder.MustDate("2026-10-21"))

		assert.True(t, c.Has(draft.ChangeDate|draft.ChangeStartTime|draft.ChangeDuration))
		_, ok := d.StartTime()
		assert.False(t, ok)
		assert.Zero(t, d.Duration())
	})

	t.Run("start time too close to closing clears the duration", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()
		require.Equal(t, 2, d.Duration())

		c := d.SetStartTime(calendar.MustTimeOfDay("21:00"))

		assert.True(t, c.Has(draft.ChangeDuration))
		assert.Zero(t, d.Duration())
	})

	t.Run("start time with room for the duration keeps it", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()

		d.SetStartTime(calendar.MustTimeOfDay("15:00"))

		assert.Equal(t, 2, d.Duration())
	})

	t.Run("same start time asks for durations again until they are known", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()
		at := calendar.MustTimeOfDay("15:00")
		d.SetStartTime(at)

		assert.True(t, d.SetStartTime(at).Has(draft.ChangeStartTime))
		assert.Equal(t, 2, d.Duration())

		d.ReconcileDurations([]int{1, 2, 3})
		assert.True(t, d.SetStartTime(at).IsZero())
	})
}

func TestSetters(t *testing.T) {
	t.Run("room smaller than the party is rejected", func(t *testing.T) {
		d := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.People = 6
			b.Room = draft.Room{}
		}).Build()

		assert.True(t, d.SetRoomType(builder.NewRoom()).IsZero())
		assert.Nil(t, d.Room())
	})

	t.Run("room that does not offer the console is rejected", func(t *testing.T) {
		d := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.Console = "SWITCH"; b.Room = draft.Room{} }).Build()

		assert.True(t, d.SetRoomType(builder.NewRoom()).IsZero())
	})

	t.Run("only one game is kept", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()

		d.SelectGame(draft.Game{ID: "game-tekken8", Name: "Tekken 8"})

		require.Len(t, d.Games(), 1)
		assert.Equal(t, "game-tekken8", d.Games()[0].ID)
	})

	t.Run("game outside the unit catalog is rejected", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()
		assert.True(t, d.SelectGame(draft.Game{ID: "game-unknown"}).IsZero())
	})

	t.Run("duration must be in the latest eligible set", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()

		assert.True(t, d.SetDuration(5).IsZero())
		assert.Equal(t, 2, d.Duration())
		assert.True(t, d.SetDuration(3).Has(draft.ChangeDuration))
	})

	t.Run("duration cannot be set before eligibility is known", func(t *testing.T) {
		d := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.Durations = nil; b.Duration = 0 }).Build()

		assert.True(t, d.SetDuration(1).IsZero())
	})

	t.Run("reconciling drops a duration no longer eligible", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()

		c := d.ReconcileDurations([]int{3, 1, 1})

		assert.True(t, c.Has(draft.ChangeDuration))
		assert.Zero(t, d.Duration())
		set, known := d.ValidDurations()
		assert.True(t, known)
		assert.Equal(t, []int{1, 3}, set)
	})

	t.Run("food upsert replaces and zero quantity removes", func(t *testing.T) {
		d := builder.NewDraftBuilder().Build()
		cola := builder.NewFood("fnb-cola", 10000, 1)

		d.UpsertFood(cola, 1)
		d.UpsertFood(cola, 3)
		require.Len(t, d.Foods(), 1)
		assert.Equal(t, 3, d.Foods()[0].Quantity)

		d.UpsertFood(cola, 0)
		assert.Empty(t, d.Foods())
	})
}

func TestPricing(t *testing.T) {
	t.Run("subtotal follows unit price, duration, food and promo", func(t *testing.T) {
		d := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.Duration = 3 }).Build()
		assert.Equal(t, int64(150000), d.Subtotal())

		code, err := promo.NewCode("hemat10")
		require.NoError(t, err)
		discount, err := promo.NewPercentageDiscount(10)
		require.NoError(t, err)

		d.ApplyPromo(code, discount)

		assert.Equal(t, int64(135000), d.Subtotal())
		require.NotNil(t, d.Promo())
		assert.Equal(t, int64(15000), d.Promo().DiscountAmount)
		assert.Equal(t, "HEMAT10", d.Promo().Code)

		d.UpsertFood(builder.NewFood("fnb-cola", 10000, 2), 2)
		assert.Equal(t, int64(153000), d.Subtotal())

		d.RemovePromo()
		assert.Equal(t, int64(170000), d.Subtotal())
		assert.Nil(t, d.Promo())
	})

	t.Run("missing duration prices the base at zero", func(t *testing.T) {
		d := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.Duration = 0 }).Build()
		assert.Zero(t, d.Subtotal())
	})
}

func TestRewardMode(t *testing.T) {
	seed := func() *draft.Draft {
		d := draft.New(builder.DefaultWindow())
		d.SeedReward(builder.NewRewardInfo())
		return d
	}

	t.Run("seeding fixes the preset fields", func(t *testing.T) {
		d := seed()

		assert.True(t, d.IsRewardMode())
		assert.Equal(t, "PS5", d.Console())
		assert.Equal(t, "room-vip", d.Room().ID)
		assert.Equal(t, "unit-vip-1", d.Unit().ID)
		assert.Equal(t, 2, d.Duration())
		assert.Equal(t, 2, d.NumberOfPeople())
		assert.Zero(t, d.Subtotal())
		assert.Equal(t, draft.StepConsole, d.ActiveStep())
	})

	t.Run("locked fields ignore changes", func(t *testing.T) {
		d := seed()

		assert.True(t, d.SetConsole("XBOX").IsZero())
		assert.True(t, d.SetNumberOfPeople(4).IsZero())
		assert.True(t, d.SetDuration(1).IsZero())
		assert.True(t, d.SetRoomType(draft.Room{ID: "room-regular", MaxVisitors: 6}).IsZero())
		assert.Equal(t, "PS5", d.Console())
		assert.Equal(t, 2, d.Duration())
	})

	t.Run("date change keeps the preset duration", func(t *testing.T) {
		d := seed()
		d.SetDate(builder.MustDate("2026-10-22"))
		assert.Equal(t, 2, d.Duration())
	})

	t.Run("reconcile merges the preset duration instead of clearing it", func(t *testing.T) {
		d := seed()

		d.ReconcileDurations([]int{1, 3})

		set, _ := d.ValidDurations()
		assert.Equal(t, []int{1, 2, 3}, set)
		assert.Equal(t, 2, d.Duration())
	})

	t.Run("catalog merge happens once and keeps reward name and price", func(t *testing.T) {
		d := seed()
		catalog := builder.NewUnit(builder.NewRoom())

		c, merged := d.MergeRewardUnit(catalog)
		require.True(t, merged)
		assert.True(t, c.Has(draft.ChangeStep))
		assert.Equal(t, draft.StepUnit, d.ActiveStep())

		u := d.Unit()
		assert.Equal(t, "Reward VIP PS5", u.Name)
		assert.Zero(t, u.Price)
		assert.Len(t, u.Games, 2)
		assert.Equal(t, "10:00", u.OpenTime)
		assert.True(t, d.Reward().Merged())

		_, again := d.MergeRewardUnit(catalog)
		assert.False(t, again)
	})

	t.Run("catalog without the preset unit does not merge", func(t *testing.T) {
		d := seed()
		other := builder.NewUnit(builder.NewRoom())
		other.ID = "unit-other"

		_, merged := d.MergeRewardUnit(other)

		assert.False(t, merged)
		assert.Equal(t, draft.StepConsole, d.ActiveStep())
	})
}

func TestSubscribe(t *testing.T) {
	d := draft.New(builder.DefaultWindow())
	var got []draft.Change
	unsubscribe := d.Subscribe(func(c draft.Change) { got = append(got, c) })

	d.SetConsole("PS5")
	d.SetConsole("PS5")
	d.SetNotes("birthday")
	unsubscribe()
	d.SetNotes("after unsubscribe")

	require.Len(t, got, 2)
	assert.True(t, got[0].Has(draft.ChangeConsole))
	assert.Equal(t, draft.ChangeNotes, got[1])
}

func TestSnapshotIsDetached(t *testing.T) {
	d := builder.NewDraftBuilder().Build()
	snap := d.Snapshot()

	snap.Unit.Games[0].Name = "mutated"
	snap.SelectedGames[0].ID = "mutated"

	assert.Equal(t, "EA FC 25", d.Unit().Games[0].Name)
	assert.Equal(t, "game-fc25", d.Games()[0].ID)
	assert.Equal(t, d.Subtotal(), snap.Subtotal)
}
