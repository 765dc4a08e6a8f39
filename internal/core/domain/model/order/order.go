package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIdentityAlreadyAssigned is returned when a stored order is given a second identity.
	ErrIdentityAlreadyAssigned = errors.New("order identity is already assigned")
)

// Quoter prices an order line. services.Pricing is the production implementation.
type Quoter interface {
	Quote(svc *service.Service, weight kernel.Amount) (decimal.Decimal, error)
}

// StatusChange is one entry of the status history of an order.
type StatusChange struct {
	Status Status
	At     time.Time
}

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - customer and service identities are set and never change
//   - weight is positive and never changes
//   - total price equals price per unit times weight at creation time and never changes
//   - pickup date is not before the current day whenever it is set
//   - every status change is recorded exactly once, setting the current status records nothing
type Order struct {
	id           kernel.ID
	customerID   kernel.ID
	serviceID    kernel.ID
	weight       kernel.Amount
	totalPrice   decimal.Decimal
	status       Status
	pickupDate   kernel.Date
	pickupTime   PickupTime
	instructions *string
	createdAt    time.Time

	// changes holds history entries not yet stored.
	changes []StatusChange

	guard guard.ConstructorGuard
}

// NewOrder creates a placed order and records the initial history entry.
//
// Parameters:
//   - customerID: identity of an existing customer
//   - svc: the ordered service, its current price is quoted
//   - weight: kilograms or items, depending on the service unit
//   - pickupDate: must not be before the local calendar day of now
//   - pickupTime: morning, afternoon or evening
//   - instructions: optional, blank means none
//   - quoter: computes the total price
//   - now: creation time of the order and of its first history entry
//
// Example:
//
//	weight, _ := kernel.ParseWeight("2")
//	tomorrow := kernel.Today(clk).AddDays(1)
//	o, err := order.NewOrder(customerID, wash, weight, tomorrow, order.Morning, "", services.NewPricing(), clk.Now())
//	// o.TotalPrice() == 400 for a service priced 200 per kg
func NewOrder(
	customerID kernel.ID,
	svc *service.Service,
	weight kernel.Amount,
	pickupDate kernel.Date,
	pickupTime PickupTime,
	instructions string,
	quoter Quoter,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:       Placed,
		instructions: kernel.Optional(instructions),
		createdAt:    now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomer(customerID),
		o.setService(svc),
		o.setWeight(weight),
		o.setPickupDate(pickupDate, now),
		o.setPickupTime(pickupTime),
	); err != nil {
		return nil, err
	}

	total, err := quoter.Quote(svc, weight)
	if err != nil {
		return nil, err
	}
	o.totalPrice = total

	o.changes = append(o.changes, StatusChange{Status: Placed, At: now})
	return o, nil
}

// RestoreOrder rebuilds a stored order. A stored pickup date may already be in the past,
// so only the field formats are checked. The restored order has no pending changes.
func RestoreOrder(
	id, customerID, serviceID kernel.ID,
	weight kernel.Amount,
	totalPrice decimal.Decimal,
	status Status,
	pickupDate kernel.Date,
	pickupTime PickupTime,
	instructions *string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totalPrice:   totalPrice,
		instructions: kernel.Optional(kernel.Deref(instructions)),
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.AssignID(id),
		o.setCustomer(customerID),
		o.setServiceID(serviceID),
		o.setWeight(weight),
		status.Validate(),
		pickupDate.Validate(),
		o.setPickupTime(pickupTime),
	); err != nil {
		return nil, err
	}
	o.status = status
	o.pickupDate = pickupDate

	return o, nil
}

// ChangeStatus moves the order to status and records a history entry at time at.
// It reports false and records nothing when the order already has that status.
func (o *Order) ChangeStatus(status Status, at time.Time) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if o.status == status {
		return false, nil
	}

	o.status = status
	o.changes = append(o.changes, StatusChange{Status: status, At: at})
	return true, nil
}

// RescheduleRequest lists the pickup details that may change after creation.
// Nil leaves a field untouched. A blank Instructions clears them.
type RescheduleRequest struct {
	PickupDate   *kernel.Date
	PickupTime   *PickupTime
	Instructions *string
}

// Reschedule applies req atomically. A new pickup date must not be before the day of now.
func (o *Order) Reschedule(req RescheduleRequest, now time.Time) error {
	next := *o

	var errList []error
	if req.PickupDate != nil {
		errList = append(errList, next.setPickupDate(*req.PickupDate, now))
	}
	if req.PickupTime != nil {
		errList = append(errList, next.setPickupTime(*req.PickupTime))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if req.Instructions != nil {
		next.instructions = kernel.Optional(*req.Instructions)
	}

	*o = next
	return nil
}

// AssignID records the identity given by the store. It can be set only once.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() && o.id != id {
		return ErrIdentityAlreadyAssigned
	}
	o.id = id
	return nil
}

// PendingChanges returns the history entries recorded since the order was created,
// restored or last persisted, oldest first.
func (o *Order) PendingChanges() []StatusChange {
	changes := make([]StatusChange, len(o.changes))
	copy(changes, o.changes)
	return changes
}

// ClearChanges forgets the pending history entries once they are stored.
func (o *Order) ClearChanges() {
	o.changes = nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

func (o *Order) ServiceID() kernel.ID {
	return o.serviceID
}

func (o *Order) Weight() kernel.Amount {
	return o.weight
}

// TotalPrice is the price quoted at creation.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PickupDate() kernel.Date {
	return o.pickupDate
}

func (o *Order) PickupTime() PickupTime {
	return o.pickupTime
}

func (o *Order) Instructions() *string {
	return o.instructions
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setCustomer(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setService(svc *service.Service) error {
	if err := svc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("service", err)
	}
	return o.setServiceID(svc.ID())
}

func (o *Order) setServiceID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("service id", err)
	}
	o.serviceID = id
	return nil
}

func (o *Order) setWeight(weight kernel.Amount) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setPickupDate(date kernel.Date, now time.Time) error {
	if err := date.Validate(); err != nil {
		return err
	}

	today := kernel.NewDate(now.Local())
	if date.Before(today) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup date",
			fmt.Errorf("pickup date cannot be in the past: %s is before %s", date, today),
		)
	}

	o.pickupDate = date
	return nil
}

func (o *Order) setPickupTime(pickupTime PickupTime) error {
	if err := pickupTime.Validate(); err != nil {
		return err
	}
	o.pickupTime = pickupTime
	return nil
}
