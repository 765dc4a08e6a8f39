package location

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrLocationIsNotConstructed is returned for a Location not built by NewLocation or RestoreLocation.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

	// ErrIdentityAlreadyAssigned is returned when a stored location is given a second identity.
	ErrIdentityAlreadyAssigned = errors.New("location identity is already assigned")
)

// Location is a branch of the laundry.
type Location struct {
	id        kernel.ID
	name      kernel.Name
	address   string
	phone     kernel.Phone
	email     *string
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewLocation(name, address, phone, email string, createdAt time.Time) (*Location, error) {
	l := &Location{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setName(name),
		l.setAddress(address),
		l.setPhone(phone),
	); err != nil {
		return nil, err
	}
	l.email = kernel.Optional(email)

	return l, nil
}

func RestoreLocation(id kernel.ID, name, address, phone string, email *string, createdAt time.Time) (*Location, error) {
	l, err := NewLocation(name, address, phone, kernel.Deref(email), createdAt)
	if err != nil {
		return nil, err
	}

	if err = l.AssignID(id); err != nil {
		return nil, err
	}

	return l, nil
}

// UpdateRequest lists the mutable fields of a location. Nil leaves a field untouched.
type UpdateRequest struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

func (l *Location) Update(req UpdateRequest) error {
	next := *l

	var errList []error
	if req.Name != nil {
		errList = append(errList, next.setName(*req.Name))
	}
	if req.Address != nil {
		errList = append(errList, next.setAddress(*req.Address))
	}
	if req.Phone != nil {
		errList = append(errList, next.setPhone(*req.Phone))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if req.Email != nil {
		next.email = kernel.Optional(*req.Email)
	}

	*l = next
	return nil
}

func (l *Location) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !l.id.IsZero() && l.id != id {
		return ErrIdentityAlreadyAssigned
	}
	l.id = id
	return nil
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) ID() kernel.ID {
	return l.id
}

func (l *Location) Name() kernel.Name {
	return l.name
}

func (l *Location) Address() string {
	return l.address
}

func (l *Location) Phone() kernel.Phone {
	return l.phone
}

func (l *Location) Email() *string {
	return l.email
}

func (l *Location) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Location) setName(raw string) error {
	name, err := kernel.NewName("location name", raw)
	if err != nil {
		return err
	}
	l.name = name
	return nil
}

func (l *Location) setAddress(raw string) error {
	address := strings.TrimSpace(raw)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}

func (l *Location) setPhone(raw string) error {
	phone, err := kernel.NewPhone(raw)
	if err != nil {
		return err
	}
	l.phone = phone
	return nil
}
