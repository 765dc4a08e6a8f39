package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// NameMinLength is the minimum number of non-whitespace characters in a Name.
const NameMinLength = 3

// ErrNameIsNotConstructed is returned when a zero value Name is used.
var ErrNameIsNotConstructed = errs.NewValueIsRequiredError("name must be created via NewName")

// Name is a display name of a customer, service or location.
//
// Example:
//
//	name, err := kernel.NewName("name", "John Doe")
//	if err != nil {
//	    return err // value is invalid: name (cause: name must be at least 3 characters)
//	}
type Name struct {
	value string
	guard guard.ConstructorGuard
}

// NewName validates raw and returns it trimmed. param names the field in error messages.
func NewName(param, raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, errs.NewValueIsRequiredError(param)
	}

	if countNonSpace(trimmed) < NameMinLength {
		return Name{}, errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%s must be at least %d characters", param, NameMinLength),
		)
	}

	return Name{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// MustNewName is NewName for literals known to be valid.
func MustNewName(raw string) Name {
	name, err := NewName("name", raw)
	if err != nil {
		panic(err)
	}
	return name
}

func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}

func (n Name) String() string {
	return n.value
}

func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}

func countNonSpace(s string) int {
	count := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

