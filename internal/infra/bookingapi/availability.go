package bookingapi

import (
	"context"
	"net/url"
	"strings"

	"playroom-booking/internal/domain/availability"
	"playroom-booking/internal/domain/calendar"
)

type dayDTO struct {
	Date          calendar.Date `json:"date"`
	IsFullyBooked bool          `json:"isFullyBooked"`
}

type slotDTO struct {
	Time        calendar.TimeOfDay `json:"time"`
	IsAvailable bool               `json:"isAvailable"`
}

func unitPath(unitID string, rest ...string) string {
	return "/units/" + unitID + "/" + strings.Join(rest, "/")
}

func (c *Client) DayAvailability(ctx context.Context, unitID string, start, end calendar.Date) ([]availability.Day, error) {
	q := url.Values{}
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())

	var dtos []dayDTO
	if err := c.get(ctx, unitPath(unitID, "availability", "days"), q, &dtos); err != nil {
		return nil, err
	}
	out := make([]availability.Day, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, availability.Day{Date: d.Date, IsFullyBooked: d.IsFullyBooked})
	}
	return out, nil
}

func (c *Client) TimeAvailability(ctx context.Context, unitID string, date calendar.Date) ([]availability.Slot, error) {
	q := url.Values{}
	q.Set("date", date.String())

	var dtos []slotDTO
	if err := c.get(ctx, unitPath(unitID, "availability", "times"), q, &dtos); err != nil {
		return nil, err
	}
	out := make([]availability.Slot, 0, len(dtos))
	for _, s := range dtos {
		out = append(out, availability.Slot{Time: s.Time, IsAvailable: s.IsAvailable})
	}
	return out, nil
}

func (c *Client) Durations(ctx context.Context, unitID string, date calendar.Date, start calendar.TimeOfDay) ([]int, error) {
	q := url.Values{}
	q.Set("date", date.String())
	q.Set("startTime", start.String())

	var hours []int
	if err := c.get(ctx, unitPath(unitID, "durations"), q, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}
