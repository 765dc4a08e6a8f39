package customer

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned for a Customer not built by NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrIdentityAlreadyAssigned is returned when a stored customer is given a second identity.
	ErrIdentityAlreadyAssigned = errors.New("customer identity is already assigned")
)

// Customer represents a laundry customer.
//
// Invariants:
//   - name has at least 3 non-whitespace characters
//   - phone has between 9 and 12 digits once formatting is stripped
//   - email and address are optional and stored as nil when empty
//
// Example:
//
//	c, err := customer.NewCustomer("John Doe", "0712345678", "john@example.com", "", clk.Now())
//	if err != nil {
//	    return err
//	}
type Customer struct {
	id        kernel.ID
	name      kernel.Name
	phone     kernel.Phone
	email     *string
	address   *string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer validates every field before building the customer.
// All field errors are reported together.
func NewCustomer(name, phone, email, address string, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setName(name), c.setPhone(phone)); err != nil {
		return nil, err
	}
	c.email = kernel.Optional(email)
	c.address = kernel.Optional(address)

	return c, nil
}

// RestoreCustomer rebuilds a stored customer. Stored values are validated again.
func RestoreCustomer(id kernel.ID, name, phone string, email, address *string, createdAt time.Time) (*Customer, error) {
	c, err := NewCustomer(name, phone, kernel.Deref(email), kernel.Deref(address), createdAt)
	if err != nil {
		return nil, err
	}

	if err = c.AssignID(id); err != nil {
		return nil, err
	}

	return c, nil
}

// UpdateRequest lists the fields of a customer that may change. Nil leaves a field untouched.
// An empty Email or Address clears the optional value.
type UpdateRequest struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// Update applies req atomically: when any field is invalid nothing changes.
func (c *Customer) Update(req UpdateRequest) error {
	next := *c

	var errList []error
	if req.Name != nil {
		errList = append(errList, next.setName(*req.Name))
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
	if req.Address != nil {
		next.address = kernel.Optional(*req.Address)
	}

	*c = next
	return nil
}

// AssignID records the identity given by the store. It can be set only once.
func (c *Customer) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !c.id.IsZero() && c.id != id {
		return ErrIdentityAlreadyAssigned
	}
	c.id = id
	return nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the store identity, zero until the customer is persisted.
func (c *Customer) ID() kernel.ID {
	return c.id
}

func (c *Customer) Name() kernel.Name {
	return c.name
}

// Phone returns the phone number as the user typed it.
func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

func (c *Customer) Email() *string {
	return c.email
}

func (c *Customer) Address() *string {
	return c.address
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setName(raw string) error {
	name, err := kernel.NewName("name", raw)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(raw string) error {
	phone, err := kernel.NewPhone(raw)
	if err != nil {
		return err
	}
	c.phone = phone
	return nil
}
