package services

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places of a quoted total.
const PriceScale = 2

// Pricing quotes order totals from the current service price.
//
// Business rules:
//   - total = price per unit x weight
//   - the total is rounded half away from zero to PriceScale places, the scale of
//     the stored total; price and weight scales are fixed by kernel.NewPrice and kernel.NewWeight
//   - a total that rounds to zero is refused
//   - no discounts, taxes or minimum charges apply
//
// Example:
//
//	pricing := services.NewPricing()
//	total, err := pricing.Quote(wash, kernel.MustNewWeight(2.5)) // 500.00 for 200 per kg
type Pricing struct{}

func NewPricing() Pricing {
	return Pricing{}
}

// Quote returns price per unit times weight.
//
// Returns:
//   - the rounded total on success
//   - a required-value error if the service or weight was not constructed
//   - an invalid-value error if the total rounds to zero
func (Pricing) Quote(svc *service.Service, weight kernel.Amount) (decimal.Decimal, error) {
	if err := svc.Validate(); err != nil {
		return decimal.Zero, errs.NewValueIsRequiredErrorWithCause("service", err)
	}
	if err := weight.Validate(); err != nil {
		return decimal.Zero, err
	}

	total := svc.PricePerUnit().Decimal().Mul(weight.Decimal()).Round(PriceScale)
	if !total.IsPositive() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s %s at %s per unit costs less than 0.01", weight, svc.Unit(), svc.PricePerUnit()),
		)
	}
	return total, nil
}
