package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// MaxDiscount is the highest discount percentage a reservation may carry.
	MaxDiscount = decimal.NewFromInt(30)

	oneHundred = decimal.NewFromInt(100)
)

// Price computes the discount and total billed for a reservation interval.
//
// The gross amount is the fractional number of hours times the hourly rate.
// A discount is honored only when the reservation starts strictly after now
// and the percentage is within (0, 30]; otherwise it is forced to zero and
// the total equals the gross amount. The total is rounded to 2 decimals once,
// at the end, so intermediate steps keep full precision.
func Price(startAt, endAt time.Time, hourlyRate, discount decimal.Decimal, now time.Time) (decimal.Decimal, decimal.Decimal, error) {
	if !endAt.After(startAt) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: end must be after start", ErrValidation)
	}

	hours := decimal.NewFromFloat(endAt.Sub(startAt).Hours())
	gross := hours.Mul(hourlyRate)

	if startAt.After(now) && discount.IsPositive() && discount.LessThanOrEqual(MaxDiscount) {
		total := gross.Sub(gross.Mul(discount).Div(oneHundred))
		return discount, total.Round(2), nil
	}

	return decimal.Zero, gross.Round(2), nil
}
