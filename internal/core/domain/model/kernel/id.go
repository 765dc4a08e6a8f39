package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"laundry/internal/pkg/errs"
)

// ID is the synthetic integer identity of a persisted record.
// The zero value means the record has not been stored yet.
type ID int64

// ParseID converts loosely typed input, such as a menu answer, into an ID.
// Non-numeric and non-positive input is reported as invalid input.
//
// Example:
//
//	id, err := kernel.ParseID(" 42 ")
//	if err != nil {
//	    fmt.Println("Invalid ID. Please enter a number.")
//	}
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", raw))
	}

	id := ID(value)
	if err = id.Validate(); err != nil {
		return 0, err
	}

	return id, nil
}

// Validate reports whether the ID refers to a stored record.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// IsZero reports whether the ID has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
