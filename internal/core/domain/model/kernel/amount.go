package kernel

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAmountIsNotConstructed is returned when a zero value Amount is used.
var ErrAmountIsNotConstructed = errs.NewValueIsRequiredError("amount must be created via NewPrice, NewWeight or their Parse variants")

// Decimal places and upper bounds of stored amounts. Any price times any weight
// stays below the largest storable total.
const (
	PriceScale  int32 = 2
	WeightScale int32 = 3
)

var (
	MaxPrice  = decimal.NewFromInt(1_000_000)
	MaxWeight = decimal.NewFromInt(1_000)
)

// Amount is a strictly positive decimal quantity: a price per unit or an order weight.
// It never carries more decimal places than its column stores, so a stored amount
// reads back unchanged.
type Amount struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewPrice accepts a price per unit with at most two decimals, up to MaxPrice.
func NewPrice(value decimal.Decimal) (Amount, error) {
	return newAmount("price", value, PriceScale, MaxPrice)
}

// NewWeight accepts a weight or item count with at most three decimals, up to MaxWeight.
func NewWeight(value decimal.Decimal) (Amount, error) {
	return newAmount("weight", value, WeightScale, MaxWeight)
}

// ParsePrice parses loosely typed input such as "199.99" and validates it with NewPrice.
//
// Example:
//
//	price, err := kernel.ParsePrice("200")
//	if errs.IsInvalidInput(err) {
//	    fmt.Println("Invalid price. Please enter a number.")
//	}
func ParsePrice(raw string) (Amount, error) {
	value, err := parseDecimal("price", raw)
	if err != nil {
		return Amount{}, err
	}
	return NewPrice(value)
}

// ParseWeight parses loosely typed input such as "2.5" and validates it with NewWeight.
func ParseWeight(raw string) (Amount, error) {
	value, err := parseDecimal("weight", raw)
	if err != nil {
		return Amount{}, err
	}
	return NewWeight(value)
}

// MustNewPrice is NewPrice for literals known to be valid.
func MustNewPrice(value float64) Amount {
	return must(NewPrice(decimal.NewFromFloat(value)))
}

// MustNewWeight is NewWeight for literals known to be valid.
func MustNewWeight(value float64) Amount {
	return must(NewWeight(decimal.NewFromFloat(value)))
}

func newAmount(param string, value decimal.Decimal, scale int32, limit decimal.Decimal) (Amount, error) {
	if !value.IsPositive() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%s must be a positive number, got %s", param, value.String()),
		)
	}
	if !value.Equal(value.Truncate(scale)) {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%s allows at most %d decimal places, got %s", param, scale, value.String()),
		)
	}
	if value.GreaterThan(limit) {
		return Amount{}, errs.NewValueIsOutOfRangeError(param, value.String(), "0", limit.String())
	}

	return Amount{value: value, guard: guard.NewConstructorGuard()}, nil
}

func parseDecimal(param, raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, errs.NewValueIsRequiredError(param)
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a number", raw))
	}
	return value, nil
}

func must(amount Amount, err error) Amount {
	if err != nil {
		panic(err)
	}
	return amount
}

func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.String()
}
