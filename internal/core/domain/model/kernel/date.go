package kernel

import (
	"fmt"
	"strings"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/juju/clock"
)

// DateLayout is the textual form accepted and printed for dates.
const DateLayout = time.DateOnly

// ErrDateIsNotConstructed is returned when a zero value Date is used.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or Today")

// Date is a calendar day. It is held as midnight UTC of that day so it compares
// the same way regardless of the local time zone and survives a DATE column round trip.
type Date struct {
	t     time.Time
	guard guard.ConstructorGuard
}

// NewDate returns the calendar day of t as seen in t's own location.
func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{
		t:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(param, raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Date{}, errs.NewValueIsRequiredError(param)
	}

	t, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%q is not a date, use YYYY-MM-DD", raw),
		)
	}

	return NewDate(t), nil
}

// Today returns the current local calendar day according to clk.
func Today(clk clock.Clock) Date {
	return NewDate(clk.Now().Local())
}

func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

// In returns midnight of the same calendar day in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) AddDays(days int) Date {
	return NewDate(d.t.AddDate(0, 0, days))
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
