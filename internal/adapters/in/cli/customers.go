package cli

import (
	"context"
	"fmt"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

func (a *App) listCustomers(ctx context.Context) error {
	customers, err := a.h.ListCustomers.Handle(ctx, queries.NewListCustomersQuery())
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		a.println("\nNo customers found.")
		return nil
	}

	a.heading("All Customers")
	table := newTable()
	table.AddRow("ID", "Name", "Phone")
	for _, c := range customers {
		table.AddRow(c.ID, c.Name, c.Phone)
	}
	a.println(table)
	return nil
}

func (a *App) findCustomerByID(ctx context.Context) error {
	c, err := a.customerByPrompt(ctx, "\nEnter customer ID: ")
	if err != nil {
		return err
	}
	a.printCustomer(c)
	return nil
}

func (a *App) findCustomerByPhone(ctx context.Context) error {
	phone, err := a.ask("\nEnter customer phone number: ")
	if err != nil {
		return err
	}

	query, err := queries.NewFindCustomerByPhoneQuery(phone)
	if err != nil {
		return err
	}
	c, err := a.h.FindCustomerByPhone.Handle(ctx, query)
	if errs.IsNotFound(err) {
		a.printf("\nNo customer found with phone number %s\n", phone)
		return nil
	}
	if err != nil {
		return err
	}

	a.printCustomer(c)
	return nil
}

func (a *App) addCustomer(ctx context.Context) error {
	a.heading("Add New Customer")
	c, err := a.promptNewCustomer(ctx)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Customer added successfully with ID: %d", c.ID()))
	return nil
}

func (a *App) promptNewCustomer(ctx context.Context) (*customer.Customer, error) {
	answers, err := a.askAll("Enter customer name: ", "Enter phone number: ", "Enter email (optional): ", "Enter address (optional): ")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCreateCustomerCommand(answers[0], answers[1], answers[2], answers[3])
	if err != nil {
		return nil, err
	}
	return a.h.CreateCustomer.Handle(ctx, cmd)
}

func (a *App) updateCustomer(ctx context.Context) error {
	current, err := a.customerByPrompt(ctx, "\nEnter customer ID to update: ")
	if err != nil {
		return err
	}

	a.println("\nCurrent customer details:")
	a.printCustomer(current)
	a.println("\nEnter new details (leave blank to keep current value):")

	answers, err := a.askAll("Name: ", "Phone: ", "Email: ", "Address: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(kernel.ID(current.ID), customer.UpdateRequest{
		Name:    changed(answers[0]),
		Phone:   changed(answers[1]),
		Email:   changed(answers[2]),
		Address: changed(answers[3]),
	})
	if err != nil {
		return err
	}
	if _, err = a.h.UpdateCustomer.Handle(ctx, cmd); err != nil {
		return err
	}

	a.success("Customer updated successfully!")
	return nil
}

func (a *App) deleteCustomer(ctx context.Context) error {
	c, err := a.customerByPrompt(ctx, "\nEnter customer ID to delete: ")
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("\nAre you sure you want to delete customer %s? Their orders are deleted too.", c.Name))
	if err != nil || !ok {
		return err
	}

	cmd, err := commands.NewDeleteCustomerCommand(kernel.ID(c.ID))
	if err != nil {
		return err
	}
	deleted, err := a.h.DeleteCustomer.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if !deleted {
		a.println("\nFailed to delete customer.")
		return nil
	}

	a.success("Customer deleted successfully!")
	return nil
}

func (a *App) viewCustomerOrders(ctx context.Context) error {
	c, err := a.customerByPrompt(ctx, "\nEnter customer ID: ")
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(kernel.ID(c.ID))
	if err != nil {
		return err
	}
	orders, err := a.h.ListCustomerOrders.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		a.printf("\nNo orders found for customer %s\n", c.Name)
		return nil
	}

	a.heading("Orders for " + c.Name)
	a.printOrders(orders)
	return nil
}

func (a *App) customerByPrompt(ctx context.Context, label string) (queries.CustomerView, error) {
	id, err := a.askID(label)
	if err != nil {
		return queries.CustomerView{}, err
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return queries.CustomerView{}, err
	}
	return a.h.GetCustomer.Handle(ctx, query)
}

func (a *App) askID(label string) (kernel.ID, error) {
	raw, err := a.ask(label)
	if err != nil {
		return 0, err
	}
	return kernel.ParseID(raw)
}

func (a *App) askAll(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := a.ask(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// changed turns a blank update answer into "keep the current value".
func changed(answer string) *string {
	if answer == "" {
		return nil
	}
	return &answer
}
