// Package seed fills an empty store with sample services, locations, customers and orders.
// Records go through the regular command handlers, so every validation applies.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"

	"github.com/juju/clock"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

type File struct {
	Services  []Service  `yaml:"services"`
	Locations []Location `yaml:"locations"`
	Customers []Customer `yaml:"customers"`
	Orders    []Order    `yaml:"orders"`
}

type Service struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Unit        string `yaml:"unit"`
}

type Location struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
}

type Customer struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
}

// Order points at its customer by phone and at its service by name.
// An empty Status leaves the order placed.
type Order struct {
	Customer     string `yaml:"customer"`
	Service      string `yaml:"service"`
	Weight       string `yaml:"weight"`
	PickupInDays int    `yaml:"pickup_in_days"`
	PickupTime   string `yaml:"pickup_time"`
	Instructions string `yaml:"instructions"`
	Status       string `yaml:"status"`
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse seed: %w", err)
	}
	return f, nil
}

// Load reads the seed at path, or the built-in sample data when path is empty.
func Load(path string) (File, error) {
	if path == "" {
		return Parse(defaultData)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed: %w", err)
	}
	return Parse(data)
}

type Handlers struct {
	CreateCustomer    commands.CreateCustomerCommandHandler
	CreateService     commands.CreateServiceCommandHandler
	CreateLocation    commands.CreateLocationCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	ListServices      queries.ListServicesQueryHandler
}

type Seeder struct {
	h      Handlers
	clock  clock.Clock
	logger *slog.Logger
}

func NewSeeder(h Handlers, clk clock.Clock, logger *slog.Logger) *Seeder {
	return &Seeder{
		h:      h,
		clock:  clk,
		logger: logger.With("component", "seed"),
	}
}

// Apply stores f unless the catalog already has a service. It reports whether anything was written.
// Records are created one command at a time; a failure leaves the earlier records in place.
func (s *Seeder) Apply(ctx context.Context, f File) (bool, error) {
	existing, err := s.h.ListServices.Handle(ctx, queries.NewListServicesQuery())
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		s.logger.Info("store already has data, seed skipped", "services", len(existing))
		return false, nil
	}

	servicesByName := make(map[string]kernel.ID, len(f.Services))
	for _, svc := range f.Services {
		id, err := s.createService(ctx, svc)
		if err != nil {
			return false, fmt.Errorf("seed service %q: %w", svc.Name, err)
		}
		servicesByName[svc.Name] = id
	}

	for _, loc := range f.Locations {
		if err := s.createLocation(ctx, loc); err != nil {
			return false, fmt.Errorf("seed location %q: %w", loc.Name, err)
		}
	}

	customersByPhone := make(map[string]kernel.ID, len(f.Customers))
	for _, c := range f.Customers {
		id, err := s.createCustomer(ctx, c)
		if err != nil {
			return false, fmt.Errorf("seed customer %q: %w", c.Name, err)
		}
		customersByPhone[c.Phone] = id
	}

	for i, o := range f.Orders {
		customerID, ok := customersByPhone[o.Customer]
		if !ok {
			return false, fmt.Errorf("seed order %d: %w", i+1, errUnknownReference("customer", o.Customer))
		}
		serviceID, ok := servicesByName[o.Service]
		if !ok {
			return false, fmt.Errorf("seed order %d: %w", i+1, errUnknownReference("service", o.Service))
		}
		if err := s.createOrder(ctx, o, customerID, serviceID); err != nil {
			return false, fmt.Errorf("seed order %d: %w", i+1, err)
		}
	}

	s.logger.Info("seed applied",
		"services", len(f.Services),
		"locations", len(f.Locations),
		"customers", len(f.Customers),
		"orders", len(f.Orders),
	)
	return true, nil
}

func errUnknownReference(kind, key string) error {
	return fmt.Errorf("%s %q is not part of the seed", kind, key)
}

func (s *Seeder) createService(ctx context.Context, in Service) (kernel.ID, error) {
	price, priceErr := kernel.ParsePrice(in.Price)
	unit, unitErr := service.ParseUnit(in.Unit)
	if err := errors.Join(priceErr, unitErr); err != nil {
		return 0, err
	}

	cmd, err := commands.NewCreateServiceCommand(in.Name, in.Description, price, unit)
	if err != nil {
		return 0, err
	}
	svc, err := s.h.CreateService.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}
	return svc.ID(), nil
}

func (s *Seeder) createLocation(ctx context.Context, in Location) error {
	cmd, err := commands.NewCreateLocationCommand(in.Name, in.Address, in.Phone, in.Email)
	if err != nil {
		return err
	}
	_, err = s.h.CreateLocation.Handle(ctx, cmd)
	return err
}

func (s *Seeder) createCustomer(ctx context.Context, in Customer) (kernel.ID, error) {
	cmd, err := commands.NewCreateCustomerCommand(in.Name, in.Phone, in.Email, in.Address)
	if err != nil {
		return 0, err
	}
	c, err := s.h.CreateCustomer.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}
	return c.ID(), nil
}

func (s *Seeder) createOrder(ctx context.Context, in Order, customerID, serviceID kernel.ID) error {
	weight, weightErr := kernel.ParseWeight(in.Weight)
	pickupTime, timeErr := order.ParsePickupTime(in.PickupTime)
	status := order.Placed
	var statusErr error
	if in.Status != "" {
		status, statusErr = order.ParseStatus(in.Status)
	}
	if err := errors.Join(weightErr, timeErr, statusErr); err != nil {
		return err
	}

	pickupDate := kernel.Today(s.clock).AddDays(in.PickupInDays)
	cmd, err := commands.NewCreateOrderCommand(customerID, serviceID, weight, pickupDate, pickupTime, in.Instructions)
	if err != nil {
		return err
	}
	o, err := s.h.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if status == order.Placed {
		return nil
	}

	update, err := commands.NewUpdateOrderStatusCommand(o.ID(), status)
	if err != nil {
		return err
	}
	_, err = s.h.UpdateOrderStatus.Handle(ctx, update)
	return err
}
