//go:build unit

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"playroom-booking/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	d, err := calendar.ParseDate("2026-02-14")
	require.NoError(t, err)

	assert.Equal(t, "2026-02-01", d.MonthStart().String())
	assert.Equal(t, "2026-02-28", d.MonthEnd().String())
	assert.Equal(t, "2026-03-02", d.AddDays(16).String())

	_, err = calendar.ParseDate("14/02/2026")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-02-14"`, string(b))

	var back calendar.Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}

func TestTimeOfDay(t *testing.T) {
	tod, err := calendar.ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, tod.Minutes())
	assert.Equal(t, "09:30", tod.String())

	_, err = calendar.ParseTimeOfDay("9.30")
	assert.ErrorIs(t, err, calendar.ErrInvalidTimeOfDay)

	assert.Equal(t, "00:30", calendar.TimeOfDay(24*60+30).String())
}

func TestAtKeepsWallClock(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	d, _ := calendar.ParseDate("2026-10-20")

	got := calendar.At(d, calendar.MustTimeOfDay("14:00"), jakarta)

	assert.Equal(t, "2026-10-20 14:00", got.Format(calendar.DateTimeLayout))
	assert.Equal(t, jakarta, got.Location())
}

func TestAtAcrossDaylightSaving(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// clocks go back from 03:00 to 02:00 on 2026-10-25
	d, _ := calendar.ParseDate("2026-10-25")

	start := calendar.At(d, calendar.MustTimeOfDay("01:30"), berlin)
	end := calendar.AtPlusHours(d, calendar.MustTimeOfDay("01:30"), 3, berlin)

	assert.Equal(t, "2026-10-25 01:30", start.Format(calendar.DateTimeLayout))
	assert.Equal(t, "2026-10-25 04:30", end.Format(calendar.DateTimeLayout))
	assert.Equal(t, 4*time.Hour, end.Sub(start))
}

func TestAtPlusHoursRollsOverMidnight(t *testing.T) {
	d, _ := calendar.ParseDate("2026-12-31")

	end := calendar.AtPlusHours(d, calendar.MustTimeOfDay("23:00"), 2, time.UTC)

	assert.Equal(t, "2027-01-01 01:00", end.Format(calendar.DateTimeLayout))
}

func TestWindow(t *testing.T) {
	w, err := calendar.ParseWindow("10:00", "22:00")
	require.NoError(t, err)

	starts := w.Starts()
	require.Len(t, starts, 24)
	assert.Equal(t, "10:00", starts[0].String())
	assert.Equal(t, "21:30", starts[len(starts)-1].String())

	assert.Equal(t, 8, w.MaxHoursFrom(calendar.MustTimeOfDay("14:00")))
	assert.Equal(t, 0, w.MaxHoursFrom(calendar.MustTimeOfDay("21:30")))

	t.Run("overnight window wraps past midnight", func(t *testing.T) {
		night, err := calendar.ParseWindow("18:00", "02:00")
		require.NoError(t, err)

		assert.Len(t, night.Starts(), 16)
		assert.Equal(t, 3, night.MaxHoursFrom(calendar.MustTimeOfDay("23:00")))
		assert.Equal(t, 1, night.MaxHoursFrom(calendar.MustTimeOfDay("01:00")))
	})
}
