package promo

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPromoCode       = errors.New("invalid promo code format")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{2,32}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !promoCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidPromoCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Matches compares against the code echoed by the validator, ignoring case.
func (c Code) Matches(returned string) bool {
	return strings.EqualFold(strings.TrimSpace(returned), string(c))
}

type Discount struct {
	percentOff float64
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: percentOff}, nil
}

func (d Discount) PercentOff() float64 {
	return d.percentOff
}

func (d Discount) IsZero() bool {
	return d.percentOff == 0
}

// CalculateDiscountAmount never returns more than the price it discounts.
func (d Discount) CalculateDiscountAmount(price int64) int64 {
	if price <= 0 || d.percentOff <= 0 {
		return 0
	}
	amount := int64(float64(price) * d.percentOff / 100.0)
	if amount > price {
		return price
	}
	return amount
}

// Validation is what the upstream validator answered for a code.
type Validation struct {
	PromoCode  string
	Percentage float64
	IsActive   bool
}

type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeInactive
	OutcomeApplied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeInactive:
		return "inactive"
	default:
		return "not_found"
	}
}

// Evaluate classifies a validator answer. A code echoed back that differs from the
// entered one is a different voucher and counts as not found.
func Evaluate(entered Code, v *Validation) (Outcome, Discount) {
	if v == nil || !entered.Matches(v.PromoCode) {
		return OutcomeNotFound, Discount{}
	}
	if !v.IsActive {
		return OutcomeInactive, Discount{}
	}
	d, err := NewPercentageDiscount(v.Percentage)
	if err != nil {
		return OutcomeNotFound, Discount{}
	}
	return OutcomeApplied, d
}
