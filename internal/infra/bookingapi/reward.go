package bookingapi

import (
	"context"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/usecase/shared"
)

type applyRewardDTO struct {
	RedirectTarget string `json:"redirectTarget"`
	RewardDetails  struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"rewardDetails"`
	BookingPreset struct {
		Console  string  `json:"console"`
		RoomType roomDTO `json:"roomType"`
		Unit     unitDTO `json:"unit"`
		Duration int     `json:"duration"`
		Visitors int     `json:"visitors"`
	} `json:"bookingPreset"`
	PriceAdjustment struct {
		OriginalPrice  int64 `json:"originalPrice"`
		DiscountAmount int64 `json:"discountAmount"`
		FinalPrice     int64 `json:"finalPrice"`
	} `json:"priceAdjustment"`
}

func (c *Client) ApplyReward(ctx context.Context, userRewardID string) (*shared.RewardGrant, error) {
	var dto applyRewardDTO
	if err := c.post(ctx, "/rewards/"+userRewardID+"/apply", struct{}{}, &dto); err != nil {
		return nil, err
	}

	preset := dto.BookingPreset
	return &shared.RewardGrant{
		RedirectTarget: dto.RedirectTarget,
		Reward: draft.RewardInfo{
			Name:           dto.RewardDetails.Name,
			Description:    dto.RewardDetails.Description,
			OriginalPrice:  dto.PriceAdjustment.OriginalPrice,
			DiscountAmount: dto.PriceAdjustment.DiscountAmount,
			FinalPrice:     dto.PriceAdjustment.FinalPrice,
			UserRewardID:   userRewardID,
			PresetConsole:  preset.Console,
			PresetRoom:     preset.RoomType.toDomain(),
			PresetUnit:     preset.Unit.toDomain(),
			PresetDuration: preset.Duration,
			PresetVisitors: preset.Visitors,
		},
	}, nil
}
