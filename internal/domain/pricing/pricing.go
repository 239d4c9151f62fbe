package pricing

import (
	"math"

	"playroom-booking/internal/domain/promo"
)

type LineItem struct {
	UnitPrice int64
	Quantity  int
}

// Input is everything price-affecting on a draft. RewardFinalPrice replaces the
// hourly base when set.
type Input struct {
	UnitPrice        int64
	Duration         int
	HasUnit          bool
	RewardFinalPrice *int64
	Items            []LineItem
	Discount         promo.Discount
}

type Breakdown struct {
	BaseCost  int64 `json:"baseCost"`
	AddOnCost int64 `json:"addOnCost"`
	Gross     int64 `json:"gross"`
	Discount  int64 `json:"discount"`
	Subtotal  int64 `json:"subtotal"`
}

type Totals struct {
	Breakdown
	TaxRate float64 `json:"taxRate"`
	Tax     int64   `json:"tax"`
	Total   int64   `json:"total"`
}

func BaseCost(in Input) int64 {
	if in.RewardFinalPrice != nil {
		return max(*in.RewardFinalPrice, 0)
	}
	if !in.HasUnit || in.Duration <= 0 {
		return 0
	}
	return in.UnitPrice * int64(in.Duration)
}

func AddOnCost(items []LineItem) int64 {
	var sum int64
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}

// Compute always starts from scratch; callers never patch a previous Breakdown.
func Compute(in Input) Breakdown {
	base := BaseCost(in)
	addOn := AddOnCost(in.Items)
	gross := base + addOn
	discount := in.Discount.CalculateDiscountAmount(gross)

	return Breakdown{
		BaseCost:  base,
		AddOnCost: addOn,
		Gross:     gross,
		Discount:  discount,
		Subtotal:  max(gross-discount, 0),
	}
}

// WithTax adds tax only when the draft sits on the payment step.
func WithTax(b Breakdown, taxRate float64, onPaymentStep bool) Totals {
	t := Totals{Breakdown: b}
	if onPaymentStep && taxRate > 0 {
		t.TaxRate = taxRate
		t.Tax = int64(math.Round(float64(b.Subtotal) * taxRate))
	}
	t.Total = max(b.Subtotal+t.Tax, 0)
	return t
}
