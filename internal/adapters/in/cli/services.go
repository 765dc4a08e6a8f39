package cli

import (
	"context"
	"fmt"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"
)

func (a *App) listServices(ctx context.Context) error {
	services, err := a.h.ListServices.Handle(ctx, queries.NewListServicesQuery())
	if err != nil {
		return err
	}
	if len(services) == 0 {
		a.println("\nNo services found.")
		return nil
	}

	a.heading("All Services")
	table := newTable()
	table.RightAlign(2)
	table.AddRow("ID", "Name", "Price")
	for _, s := range services {
		table.AddRow(s.ID, s.Name, money(s.PricePerUnit)+"/"+s.Unit)
	}
	a.println(table)
	return nil
}

func (a *App) findServiceByID(ctx context.Context) error {
	s, err := a.serviceByPrompt(ctx, "\nEnter service ID: ")
	if err != nil {
		return err
	}
	a.printService(s)
	return nil
}

func (a *App) findServiceByName(ctx context.Context) error {
	name, err := a.ask("\nEnter service name: ")
	if err != nil {
		return err
	}

	query, err := queries.NewFindServiceByNameQuery(name)
	if err != nil {
		return err
	}
	s, err := a.h.FindServiceByName.Handle(ctx, query)
	if err != nil {
		return err
	}

	a.printService(s)
	return nil
}

func (a *App) addService(ctx context.Context) error {
	a.heading("Add New Service")
	answers, err := a.askAll("Enter service name: ", "Enter description: ")
	if err != nil {
		return err
	}

	var price kernel.Amount
	err = a.askUntilValid("Enter price per unit: ", func(raw string) (err error) {
		price, err = kernel.ParsePrice(raw)
		return err
	})
	if err != nil {
		return err
	}

	var unit service.Unit
	err = a.askUntilValid("Enter unit (kg/item): ", func(raw string) (err error) {
		unit, err = service.ParseUnit(raw)
		return err
	})
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateServiceCommand(answers[0], answers[1], price, unit)
	if err != nil {
		return err
	}
	s, err := a.h.CreateService.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.success(fmt.Sprintf("Service added successfully with ID: %d", s.ID()))
	return nil
}

func (a *App) updateService(ctx context.Context) error {
	current, err := a.serviceByPrompt(ctx, "\nEnter service ID to update: ")
	if err != nil {
		return err
	}

	a.println("\nCurrent service details:")
	a.printService(current)
	a.println("\nEnter new details (leave blank to keep current value):")

	answers, err := a.askAll("Name: ", "Description: ", fmt.Sprintf("Price per %s: ", current.Unit), "Unit (kg/item): ")
	if err != nil {
		return err
	}

	req := service.UpdateRequest{
		Name:        changed(answers[0]),
		Description: changed(answers[1]),
	}
	if answers[2] != "" {
		price, parseErr := kernel.ParsePrice(answers[2])
		if parseErr != nil {
			return parseErr
		}
		req.PricePerUnit = &price
	}
	if answers[3] != "" {
		unit, parseErr := service.ParseUnit(answers[3])
		if parseErr != nil {
			return parseErr
		}
		req.Unit = &unit
	}

	cmd, err := commands.NewUpdateServiceCommand(kernel.ID(current.ID), req)
	if err != nil {
		return err
	}
	if _, err = a.h.UpdateService.Handle(ctx, cmd); err != nil {
		return err
	}

	a.success("Service updated successfully!")
	return nil
}

func (a *App) deleteService(ctx context.Context) error {
	s, err := a.serviceByPrompt(ctx, "\nEnter service ID to delete: ")
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("\nAre you sure you want to delete service %s?", s.Name))
	if err != nil || !ok {
		return err
	}

	cmd, err := commands.NewDeleteServiceCommand(kernel.ID(s.ID))
	if err != nil {
		return err
	}
	deleted, err := a.h.DeleteService.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if !deleted {
		a.println("\nFailed to delete service.")
		return nil
	}

	a.success("Service deleted successfully!")
	return nil
}

func (a *App) serviceByPrompt(ctx context.Context, label string) (queries.ServiceView, error) {
	id, err := a.askID(label)
	if err != nil {
		return queries.ServiceView{}, err
	}

	query, err := queries.NewGetServiceQuery(id)
	if err != nil {
		return queries.ServiceView{}, err
	}
	return a.h.GetService.Handle(ctx, query)
}

// askUntilValid repeats label until accept takes the answer. Only invalid input repeats;
// other failures, ErrQuit included, are returned.
func (a *App) askUntilValid(label string, accept func(raw string) error) error {
	for {
		raw, err := a.ask(label)
		if err != nil {
			return err
		}

		err = accept(raw)
		if err == nil {
			return nil
		}
		if !errs.IsInvalidInput(err) {
			return err
		}
		a.println(a.color.Red("Error: " + err.Error()))
	}
}
