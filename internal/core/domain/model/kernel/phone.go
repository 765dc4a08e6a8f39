package kernel

import (
	"strings"
	"unicode"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	// PhoneMinDigits and PhoneMaxDigits bound the digit count of a phone number
	// once formatting characters are stripped.
	PhoneMinDigits = 9
	PhoneMaxDigits = 12
)

// ErrPhoneIsNotConstructed is returned when a zero value Phone is used.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// Phone is a contact number. The value keeps the formatting the user typed,
// e.g. "+254 700 123456"; only its digits are checked.
//
// The digit-count rule is a placeholder for real number validation.
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhone validates raw by counting its digits.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	digits := Digits(trimmed)
	if len(digits) < PhoneMinDigits || len(digits) > PhoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", len(digits), PhoneMinDigits, PhoneMaxDigits)
	}

	return Phone{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// String returns the phone as entered.
func (p Phone) String() string {
	return p.value
}

// Digits returns only the decimal digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
