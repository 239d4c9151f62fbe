//go:build unit

package promo_test

import (
	"testing"

	"playroom-booking/internal/domain/promo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	valid := map[string]promo.Code{
		"save10":      "SAVE10",
		"  WEEKEND_ ": "WEEKEND_",
		"A-1":         "A-1",
	}
	for in, want := range valid {
		got, err := promo.NewCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "X", "HAS SPACE", "NO!", "THIRTYTHREECHARACTERSLONGCODE1234"} {
		_, err := promo.NewCode(in)
		assert.ErrorIs(t, err, promo.ErrInvalidPromoCode, in)
	}
}

func TestDiscount(t *testing.T) {
	_, err := promo.NewPercentageDiscount(101)
	assert.ErrorIs(t, err, promo.ErrInvalidDiscountPercent)
	_, err = promo.NewPercentageDiscount(-1)
	assert.ErrorIs(t, err, promo.ErrInvalidDiscountPercent)

	d, err := promo.NewPercentageDiscount(15)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), d.CalculateDiscountAmount(100000))
	assert.Equal(t, int64(1), d.CalculateDiscountAmount(10), "truncates toward zero")
	assert.Zero(t, d.CalculateDiscountAmount(0))
	assert.True(t, promo.Discount{}.IsZero())
}

func TestEvaluate(t *testing.T) {
	code, err := promo.NewCode("save10")
	require.NoError(t, err)

	tests := []struct {
		name        string
		validation  *promo.Validation
		wantOutcome promo.Outcome
		wantPercent float64
	}{
		{name: "no answer", validation: nil, wantOutcome: promo.OutcomeNotFound},
		{name: "different code echoed", validation: &promo.Validation{PromoCode: "SAVE20", Percentage: 20, IsActive: true}, wantOutcome: promo.OutcomeNotFound},
		{name: "inactive", validation: &promo.Validation{PromoCode: "SAVE10", Percentage: 10}, wantOutcome: promo.OutcomeInactive},
		{name: "active, case-insensitive echo", validation: &promo.Validation{PromoCode: "Save10", Percentage: 10, IsActive: true}, wantOutcome: promo.OutcomeApplied, wantPercent: 10},
		{name: "out of range percentage", validation: &promo.Validation{PromoCode: "SAVE10", Percentage: 150, IsActive: true}, wantOutcome: promo.OutcomeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, d := promo.Evaluate(code, tt.validation)
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.InDelta(t, tt.wantPercent, d.PercentOff(), 1e-9)
		})
	}

	assert.Equal(t, "applied", promo.OutcomeApplied.String())
	assert.Equal(t, "inactive", promo.OutcomeInactive.String())
	assert.Equal(t, "not_found", promo.OutcomeNotFound.String())
}
