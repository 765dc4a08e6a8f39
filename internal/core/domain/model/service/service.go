package service

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	// ErrServiceIsNotConstructed is returned for a Service not built by NewService or RestoreService.
	ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

	// ErrIdentityAlreadyAssigned is returned when a stored service is given a second identity.
	ErrIdentityAlreadyAssigned = errors.New("service identity is already assigned")
)

// Service is a priced catalog entry.
//
// Invariants:
//   - name has at least 3 non-whitespace characters and is unique in the store
//   - price per unit is strictly positive
//   - unit is kg or item
//
// Example:
//
//	price, _ := kernel.ParsePrice("200")
//	wash, err := service.NewService("Standard Wash & Iron", "", price, service.Kilogram, clk.Now())
type Service struct {
	id           kernel.ID
	name         kernel.Name
	description  *string
	pricePerUnit kernel.Amount
	unit         Unit
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewService validates every field before building the service.
func NewService(
	name, description string, pricePerUnit kernel.Amount, unit Unit, createdAt time.Time,
) (*Service, error) {
	s := &Service{
		description: kernel.Optional(description),
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setName(name),
		s.setPrice(pricePerUnit),
		s.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService rebuilds a stored service.
func RestoreService(
	id kernel.ID, name string, description *string, pricePerUnit kernel.Amount, unit Unit, createdAt time.Time,
) (*Service, error) {
	s, err := NewService(name, kernel.Deref(description), pricePerUnit, unit, createdAt)
	if err != nil {
		return nil, err
	}

	if err = s.AssignID(id); err != nil {
		return nil, err
	}

	return s, nil
}

// UpdateRequest lists the mutable fields of a service. Nil leaves a field untouched.
type UpdateRequest struct {
	Name         *string
	Description  *string
	PricePerUnit *kernel.Amount
	Unit         *Unit
}

// Update applies req atomically. A new price only affects orders created afterwards.
func (s *Service) Update(req UpdateRequest) error {
	next := *s

	var errList []error
	if req.Name != nil {
		errList = append(errList, next.setName(*req.Name))
	}
	if req.PricePerUnit != nil {
		errList = append(errList, next.setPrice(*req.PricePerUnit))
	}
	if req.Unit != nil {
		errList = append(errList, next.setUnit(*req.Unit))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if req.Description != nil {
		next.description = kernel.Optional(*req.Description)
	}

	*s = next
	return nil
}

// AssignID records the identity given by the store. It can be set only once.
func (s *Service) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !s.id.IsZero() && s.id != id {
		return ErrIdentityAlreadyAssigned
	}
	s.id = id
	return nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) ID() kernel.ID {
	return s.id
}

func (s *Service) Name() kernel.Name {
	return s.name
}

func (s *Service) Description() *string {
	return s.description
}

// PricePerUnit returns the current price of one Unit.
func (s *Service) PricePerUnit() kernel.Amount {
	return s.pricePerUnit
}

func (s *Service) Unit() Unit {
	return s.unit
}

func (s *Service) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Service) setName(raw string) error {
	name, err := kernel.NewName("service name", raw)
	if err != nil {
		return err
	}
	s.name = name
	return nil
}

func (s *Service) setPrice(price kernel.Amount) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.pricePerUnit = price
	return nil
}

func (s *Service) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	s.unit = unit
	return nil
}
