package cli

import (
	"context"
	"fmt"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
)

func (a *App) listLocations(ctx context.Context) error {
	locations, err := a.h.ListLocations.Handle(ctx, queries.NewListLocationsQuery())
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		a.println("\nNo locations found.")
		return nil
	}

	a.heading("All Locations")
	table := newTable()
	table.AddRow("ID", "Name", "Address")
	for _, l := range locations {
		table.AddRow(l.ID, l.Name, l.Address)
	}
	a.println(table)
	return nil
}

func (a *App) findLocationByID(ctx context.Context) error {
	l, err := a.locationByPrompt(ctx, "\nEnter location ID: ")
	if err != nil {
		return err
	}
	a.printLocation(l)
	return nil
}

func (a *App) addLocation(ctx context.Context) error {
	a.heading("Add New Location")
	answers, err := a.askAll("Enter location name: ", "Enter address: ", "Enter phone number: ", "Enter email (optional): ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateLocationCommand(answers[0], answers[1], answers[2], answers[3])
	if err != nil {
		return err
	}
	l, err := a.h.CreateLocation.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.success(fmt.Sprintf("Location added successfully with ID: %d", l.ID()))
	return nil
}

func (a *App) updateLocation(ctx context.Context) error {
	current, err := a.locationByPrompt(ctx, "\nEnter location ID to update: ")
	if err != nil {
		return err
	}

	a.println("\nCurrent location details:")
	a.printLocation(current)
	a.println("\nEnter new details (leave blank to keep current value):")

	answers, err := a.askAll("Name: ", "Address: ", "Phone: ", "Email: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLocationCommand(kernel.ID(current.ID), location.UpdateRequest{
		Name:    changed(answers[0]),
		Address: changed(answers[1]),
		Phone:   changed(answers[2]),
		Email:   changed(answers[3]),
	})
	if err != nil {
		return err
	}
	if _, err = a.h.UpdateLocation.Handle(ctx, cmd); err != nil {
		return err
	}

	a.success("Location updated successfully!")
	return nil
}

func (a *App) deleteLocation(ctx context.Context) error {
	l, err := a.locationByPrompt(ctx, "\nEnter location ID to delete: ")
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("\nAre you sure you want to delete location %s?", l.Name))
	if err != nil || !ok {
		return err
	}

	cmd, err := commands.NewDeleteLocationCommand(kernel.ID(l.ID))
	if err != nil {
		return err
	}
	deleted, err := a.h.DeleteLocation.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if !deleted {
		a.println("\nFailed to delete location.")
		return nil
	}

	a.success("Location deleted successfully!")
	return nil
}

func (a *App) locationByPrompt(ctx context.Context, label string) (queries.LocationView, error) {
	id, err := a.askID(label)
	if err != nil {
		return queries.LocationView{}, err
	}

	query, err := queries.NewGetLocationQuery(id)
	if err != nil {
		return queries.LocationView{}, err
	}
	return a.h.GetLocation.Handle(ctx, query)
}
