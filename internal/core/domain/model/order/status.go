package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status represents the stage of an order.
//
//	Placed ──> Pickup ──> Processing ──> Delivery ──> Completed
//
// The arrow shows the usual flow only. The shop may move an order to any status,
// for example back to Processing after a failed delivery.
type Status int

const (
	// UnknownStatus helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Placed is the status of every new order.
	Placed

	// Pickup means a rider is collecting the laundry from the customer.
	Pickup

	// Processing means the laundry is being washed, cleaned or ironed.
	Processing

	// Delivery means the laundry is on its way back to the customer.
	Delivery

	// Completed means the customer has the laundry back.
	Completed
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is not a valid status
	return map[Status]string{
		Placed:     "placed",
		Pickup:     "pickup",
		Processing: "processing",
		Delivery:   "delivery",
		Completed:  "completed",
	}
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Placed, Pickup, Processing, Delivery, Completed}
}

// ParseStatus converts stored or typed text into a Status.
// Matching ignores surrounding whitespace and letter case.
//
// Example:
//
//	s, err := order.ParseStatus("Processing") // order.Processing
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for status, str := range getStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of placed, pickup, processing, delivery, completed", raw),
	)
}

// Validate rejects UnknownStatus and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower case name used in storage and menus.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
