package bookingapi

import (
	"context"

	"playroom-booking/internal/domain/promo"
)

type promoDTO struct {
	PromoCode  string  `json:"promoCode"`
	Percentage float64 `json:"percentage"`
	IsActive   bool    `json:"isActive"`
}

func (c *Client) ValidatePromo(ctx context.Context, code promo.Code) (*promo.Validation, error) {
	var dto promoDTO
	if err := c.get(ctx, "/promos/"+code.String(), nil, &dto); err != nil {
		return nil, err
	}
	return &promo.Validation{
		PromoCode:  dto.PromoCode,
		Percentage: dto.Percentage,
		IsActive:   dto.IsActive,
	}, nil
}
