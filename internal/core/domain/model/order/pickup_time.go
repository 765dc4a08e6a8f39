package order

import (
	"fmt"
	"strconv"
	"strings"

	"laundry/internal/pkg/errs"
)

// PickupTime is the part of the day a rider collects the laundry.
type PickupTime int

const (
	UnknownPickupTime PickupTime = iota
	Morning
	Afternoon
	Evening
)

type pickupTimeInfo struct {
	name  string
	label string
}

func getPickupTimes() map[PickupTime]pickupTimeInfo {
	//nolint:exhaustive // UnknownPickupTime is not a valid pickup time
	return map[PickupTime]pickupTimeInfo{
		Morning:   {name: "morning", label: "Morning (8:00 AM - 12:00 PM)"},
		Afternoon: {name: "afternoon", label: "Afternoon (12:00 PM - 4:00 PM)"},
		Evening:   {name: "evening", label: "Evening (4:00 PM - 8:00 PM)"},
	}
}

// PickupTimes returns the valid pickup times in menu order.
func PickupTimes() []PickupTime {
	return []PickupTime{Morning, Afternoon, Evening}
}

// ParsePickupTime accepts a name ("morning") or its menu number ("1").
func ParsePickupTime(raw string) (PickupTime, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if n, err := strconv.Atoi(normalized); err == nil {
		p := PickupTime(n)
		if p.Validate() == nil {
			return p, nil
		}
	}

	for p, info := range getPickupTimes() {
		if info.name == normalized {
			return p, nil
		}
	}

	return UnknownPickupTime, errs.NewValueIsInvalidErrorWithCause(
		"pickup time",
		fmt.Errorf("%q is not one of morning, afternoon, evening", raw),
	)
}

func (p PickupTime) Validate() error {
	if _, ok := getPickupTimes()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pickup time", fmt.Errorf("%d is not a valid pickup time", p))
	}
	return nil
}

func (p PickupTime) String() string {
	if info, ok := getPickupTimes()[p]; ok {
		return info.name
	}
	return "unknown"
}

// Label is the menu text including the time window.
func (p PickupTime) Label() string {
	if info, ok := getPickupTimes()[p]; ok {
		return info.label
	}
	return "Unknown"
}
