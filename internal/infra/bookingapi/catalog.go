package bookingapi

import (
	"context"
	"net/url"

	"playroom-booking/internal/domain/draft"
)

type roomDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MaxVisitors int      `json:"maxVisitors"`
	Consoles    []string `json:"consoles"`
}

func (r roomDTO) toDomain() draft.Room {
	return draft.Room{ID: r.ID, Name: r.Name, MaxVisitors: r.MaxVisitors, Consoles: r.Consoles}
}

type gameDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type unitDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	RoomID    string    `json:"roomId"`
	Console   string    `json:"console"`
	Games     []gameDTO `json:"games"`
	OpenTime  string    `json:"openTime"`
	CloseTime string    `json:"closeTime"`
}

func (u unitDTO) toDomain() draft.Unit {
	games := make([]draft.Game, 0, len(u.Games))
	for _, g := range u.Games {
		games = append(games, draft.Game{ID: g.ID, Name: g.Name})
	}
	if len(games) == 0 {
		games = nil
	}
	return draft.Unit{
		ID:        u.ID,
		Name:      u.Name,
		Price:     u.Price,
		RoomID:    u.RoomID,
		Console:   u.Console,
		Games:     games,
		OpenTime:  u.OpenTime,
		CloseTime: u.CloseTime,
	}
}

type fnbDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (c *Client) Rooms(ctx context.Context, console string) ([]draft.Room, error) {
	q := url.Values{}
	if console != "" {
		q.Set("console", console)
	}
	var dtos []roomDTO
	if err := c.get(ctx, "/rooms", q, &dtos); err != nil {
		return nil, err
	}
	out := make([]draft.Room, 0, len(dtos))
	for _, r := range dtos {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Units fills RoomID and Console from the query when the catalog omits them.
func (c *Client) Units(ctx context.Context, roomID, console string) ([]draft.Unit, error) {
	q := url.Values{}
	if console != "" {
		q.Set("console", console)
	}
	var dtos []unitDTO
	if err := c.get(ctx, "/rooms/"+roomID+"/units", q, &dtos); err != nil {
		return nil, err
	}
	out := make([]draft.Unit, 0, len(dtos))
	for _, d := range dtos {
		u := d.toDomain()
		if u.RoomID == "" {
			u.RoomID = roomID
		}
		if u.Console == "" {
			u.Console = console
		}
		out = append(out, u)
	}
	return out, nil
}

func (c *Client) Fnbs(ctx context.Context) ([]draft.FoodItem, error) {
	var dtos []fnbDTO
	if err := c.get(ctx, "/fnbs", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]draft.FoodItem, 0, len(dtos))
	for _, f := range dtos {
		out = append(out, draft.FoodItem{ItemID: f.ID, Name: f.Name, UnitPrice: f.Price})
	}
	return out, nil
}
