package service

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Unit is the quantity a service is priced by.
type Unit int

const (
	// UnknownUnit catches uninitialized values.
	UnknownUnit Unit = iota
	Kilogram
	Item
)

func getUnitStrings() map[Unit]string {
	//nolint:exhaustive // UnknownUnit has no textual form
	return map[Unit]string{
		Kilogram: "kg",
		Item:     "item",
	}
}

// ParseUnit accepts "kg" or "item" in any letter case.
func ParseUnit(raw string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for unit, str := range getUnitStrings() {
		if str == normalized {
			return unit, nil
		}
	}
	return UnknownUnit, errs.NewValueIsInvalidErrorWithCause(
		"unit",
		fmt.Errorf("unit must be 'kg' or 'item', got %q", raw),
	)
}

// Validate rejects UnknownUnit and out of range values.
func (u Unit) Validate() error {
	if _, ok := getUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%d is not a valid unit", u))
	}
	return nil
}

func (u Unit) String() string {
	if str, ok := getUnitStrings()[u]; ok {
		return str
	}
	return "unknown"
}
