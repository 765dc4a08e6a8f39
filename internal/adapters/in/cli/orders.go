package cli

import (
	"context"
	"fmt"
	"strconv"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

func (a *App) listOrders(ctx context.Context) error {
	orders, err := a.h.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		a.println("\nNo orders found.")
		return nil
	}

	a.heading("All Orders")
	a.printOrders(orders)
	return nil
}

func (a *App) listOrdersByStatus(ctx context.Context) error {
	status, err := a.askStatus()
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersByStatusQuery(status)
	if err != nil {
		return err
	}
	orders, err := a.h.ListOrders.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		a.printf("\nNo %s orders found.\n", status)
		return nil
	}

	a.heading(capitalize(status.String()) + " Orders")
	a.printOrders(orders)
	return nil
}

func (a *App) findOrderByID(ctx context.Context) error {
	o, err := a.orderByPrompt(ctx, "\nEnter order ID: ")
	if err != nil {
		return err
	}
	a.printOrder(o)
	return nil
}

// createOrder walks through the order form. Every field is asked again until it is valid;
// only a failure to store the order aborts.
func (a *App) createOrder(ctx context.Context) error {
	a.heading("Add New Order")

	customerID, err := a.selectCustomer(ctx)
	if err != nil {
		return err
	}

	if err = a.listServices(ctx); err != nil {
		return err
	}
	svc, err := a.selectService(ctx)
	if err != nil {
		return err
	}

	var weight kernel.Amount
	err = a.askUntilValid(fmt.Sprintf("\nEnter weight in %s: ", svc.Unit), func(raw string) (err error) {
		weight, err = kernel.ParseWeight(raw)
		return err
	})
	if err != nil {
		return err
	}

	today := kernel.Today(a.clock)
	var pickupDate kernel.Date
	err = a.askUntilValid("\nEnter pickup date (YYYY-MM-DD): ", func(raw string) (err error) {
		pickupDate, err = kernel.ParseDate("pickup date", raw)
		if err != nil {
			return err
		}
		if pickupDate.Before(today) {
			return errs.NewValueIsInvalidErrorWithCause(
				"pickup date",
				fmt.Errorf("%s is in the past, today is %s", pickupDate, today),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.println("\nPickup Time Options:")
	for i, p := range order.PickupTimes() {
		a.printf("%d. %s\n", i+1, p.Label())
	}
	var pickupTime order.PickupTime
	err = a.askUntilValid("\nSelect pickup time option: ", func(raw string) (err error) {
		pickupTime, err = order.ParsePickupTime(raw)
		return err
	})
	if err != nil {
		return err
	}

	instructions, err := a.ask("\nEnter special instructions (optional): ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, kernel.ID(svc.ID), weight, pickupDate, pickupTime, instructions)
	if err != nil {
		return err
	}
	o, err := a.h.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	a.logger.Info("order created", "order_id", o.ID().Int64(), "total", o.TotalPrice().String())
	a.success(fmt.Sprintf("Order created successfully with ID: %d", o.ID()))
	a.printf("Total price: %s\n", money(o.TotalPrice()))
	return nil
}

// selectCustomer accepts an ID or a phone number and offers to register an unknown customer.
func (a *App) selectCustomer(ctx context.Context) (kernel.ID, error) {
	for {
		input, err := a.ask("Enter customer ID or phone number: ")
		if err != nil {
			return 0, err
		}

		c, err := a.lookupCustomer(ctx, input)
		if err == nil {
			a.printf("Selected customer: %s\n", c.Name)
			return kernel.ID(c.ID), nil
		}
		if !errs.IsNotFound(err) && !errs.IsInvalidInput(err) {
			return 0, err
		}

		a.println("Customer not found.")
		create, err := a.ask("Would you like to create a new customer? (y/n): ")
		if err != nil {
			return 0, err
		}
		if create != "y" && create != "Y" {
			continue
		}

		created, err := a.promptNewCustomer(ctx)
		if err != nil {
			if errs.IsInvalidInput(err) {
				a.println(a.color.Red("Error: " + err.Error()))
				continue
			}
			return 0, err
		}
		a.printf("Customer created with ID: %d\n", created.ID())
		return created.ID(), nil
	}
}

// lookupCustomer tries input as an ID first and as a phone number second,
// so a digits-only phone number still finds its customer.
func (a *App) lookupCustomer(ctx context.Context, input string) (queries.CustomerView, error) {
	if id, err := kernel.ParseID(input); err == nil {
		query, err := queries.NewGetCustomerQuery(id)
		if err != nil {
			return queries.CustomerView{}, err
		}
		c, err := a.h.GetCustomer.Handle(ctx, query)
		if !errs.IsNotFound(err) {
			return c, err
		}
	}

	query, err := queries.NewFindCustomerByPhoneQuery(input)
	if err != nil {
		return queries.CustomerView{}, err
	}
	return a.h.FindCustomerByPhone.Handle(ctx, query)
}

func (a *App) selectService(ctx context.Context) (queries.ServiceView, error) {
	for {
		s, err := a.serviceByPrompt(ctx, "\nSelect service ID: ")
		if err == nil {
			a.printf("Selected service: %s (%s per %s)\n", s.Name, money(s.PricePerUnit), s.Unit)
			return s, nil
		}

		switch {
		case errs.IsNotFound(err):
			a.println("Service not found. Please try again.")
		case errs.IsInvalidInput(err):
			a.println("Invalid input. Please enter a number.")
		default:
			return queries.ServiceView{}, err
		}
	}
}

func (a *App) updateOrderStatus(ctx context.Context) error {
	o, err := a.orderByPrompt(ctx, "\nEnter order ID to update: ")
	if err != nil {
		return err
	}

	a.printf("\nCurrent status: %s\n", o.Status)
	status, err := a.askStatus()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(o.ID), status)
	if err != nil {
		return err
	}
	result, err := a.h.UpdateOrderStatus.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if !result.Changed {
		a.printf("\nOrder is already in '%s' status.\n", status)
		return nil
	}

	a.logger.Info("order status changed", "order_id", o.ID, "from", o.Status, "to", status.String())
	a.success(fmt.Sprintf("Order status updated to '%s' successfully!", status))
	return nil
}

// askStatus accepts a menu number or a status name.
func (a *App) askStatus() (order.Status, error) {
	a.println("\nAvailable statuses:")
	statuses := order.Statuses()
	for i, s := range statuses {
		a.printf("%d. %s\n", i+1, s)
	}

	raw, err := a.ask(fmt.Sprintf("\nSelect new status (1-%d): ", len(statuses)))
	if err != nil {
		return order.UnknownStatus, err
	}
	if n, convErr := strconv.Atoi(raw); convErr == nil && n >= 1 && n <= len(statuses) {
		return statuses[n-1], nil
	}
	return order.ParseStatus(raw)
}

func (a *App) rescheduleOrder(ctx context.Context) error {
	o, err := a.orderByPrompt(ctx, "\nEnter order ID to reschedule: ")
	if err != nil {
		return err
	}

	a.printf("\nCurrent pickup: %s, %s\n", o.PickupDate.Format(kernel.DateLayout), o.PickupTime)
	a.println("\nEnter new details (leave blank to keep current value):")
	answers, err := a.askAll("Pickup date (YYYY-MM-DD): ", "Pickup time (morning/afternoon/evening): ", "Special instructions: ")
	if err != nil {
		return err
	}

	var req order.RescheduleRequest
	if answers[0] != "" {
		date, parseErr := kernel.ParseDate("pickup date", answers[0])
		if parseErr != nil {
			return parseErr
		}
		req.PickupDate = &date
	}
	if answers[1] != "" {
		pickupTime, parseErr := order.ParsePickupTime(answers[1])
		if parseErr != nil {
			return parseErr
		}
		req.PickupTime = &pickupTime
	}
	req.Instructions = changed(answers[2])

	cmd, err := commands.NewRescheduleOrderCommand(kernel.ID(o.ID), req)
	if err != nil {
		return err
	}
	if _, err = a.h.RescheduleOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	a.success("Order rescheduled successfully!")
	return nil
}

func (a *App) deleteOrder(ctx context.Context) error {
	o, err := a.orderByPrompt(ctx, "\nEnter order ID to delete: ")
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("\nAre you sure you want to delete order %d for customer %s?", o.ID, o.CustomerName))
	if err != nil || !ok {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(kernel.ID(o.ID))
	if err != nil {
		return err
	}
	deleted, err := a.h.DeleteOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if !deleted {
		a.println("\nFailed to delete order.")
		return nil
	}

	a.success("Order deleted successfully!")
	return nil
}

func (a *App) viewOrderHistory(ctx context.Context) error {
	o, err := a.orderByPrompt(ctx, "\nEnter order ID: ")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderHistoryQuery(kernel.ID(o.ID))
	if err != nil {
		return err
	}
	history, err := a.h.GetOrderHistory.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		a.printf("\nNo status history found for order %d\n", o.ID)
		return nil
	}

	a.heading(fmt.Sprintf("Status History for Order %d", o.ID))
	table := newTable()
	table.AddRow("Status", "Timestamp")
	for _, entry := range history {
		table.AddRow(entry.Status, entry.Timestamp.Local().Format(dateTimeLayout+":05"))
	}
	a.println(table)
	return nil
}

func (a *App) orderByPrompt(ctx context.Context, label string) (queries.OrderView, error) {
	id, err := a.askID(label)
	if err != nil {
		return queries.OrderView{}, err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderView{}, err
	}
	return a.h.GetOrder.Handle(ctx, query)
}
