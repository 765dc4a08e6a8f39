// Package cli is the terminal front end of the laundry store: nested numbered menus
// over the command and query handlers.
//
// Expected failures, such as invalid input, unknown records or refused deletes,
// are shown to the operator and the menu continues. Anything else is logged as well.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/labstack/gommon/color"
)

// Handlers are the use cases the menus call.
type Handlers struct {
	CreateCustomer    commands.CreateCustomerCommandHandler
	UpdateCustomer    commands.UpdateCustomerCommandHandler
	DeleteCustomer    commands.DeleteCustomerCommandHandler
	CreateService     commands.CreateServiceCommandHandler
	UpdateService     commands.UpdateServiceCommandHandler
	DeleteService     commands.DeleteServiceCommandHandler
	CreateLocation    commands.CreateLocationCommandHandler
	UpdateLocation    commands.UpdateLocationCommandHandler
	DeleteLocation    commands.DeleteLocationCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	RescheduleOrder   commands.RescheduleOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	GetCustomer         queries.GetCustomerQueryHandler
	FindCustomerByPhone queries.FindCustomerByPhoneQueryHandler
	ListCustomers       queries.ListCustomersQueryHandler
	ListCustomerOrders  queries.ListCustomerOrdersQueryHandler
	GetService          queries.GetServiceQueryHandler
	FindServiceByName   queries.FindServiceByNameQueryHandler
	ListServices        queries.ListServicesQueryHandler
	GetLocation         queries.GetLocationQueryHandler
	ListLocations       queries.ListLocationsQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	ListOrders          queries.ListOrdersQueryHandler
	GetOrderHistory     queries.GetOrderHistoryQueryHandler
	DailyReport         queries.DailyReportQueryHandler
	CustomerReport      queries.CustomerReportQueryHandler
}

// App runs one interactive session.
type App struct {
	h        Handlers
	prompter Prompter
	out      io.Writer
	color    *color.Color
	clock    clock.Clock
	logger   *slog.Logger
}

// Option adjusts an App.
type Option func(*App)

// WithoutColor disables ANSI colors, for pipes and tests.
func WithoutColor() Option {
	return func(a *App) {
		a.color.Disable()
	}
}

func NewApp(h Handlers, prompter Prompter, out io.Writer, clk clock.Clock, logger *slog.Logger, opts ...Option) *App {
	c := color.New()
	c.SetOutput(out)

	a := &App{
		h:        h,
		prompter: prompter,
		out:      out,
		color:    c,
		clock:    clk,
		logger:   logger.With("component", "cli", "session", uuid.NewString()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run shows the main menu until the operator exits. Ending the input counts as exit.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("session started")
	a.println(a.color.Bold("\n========== LaundryConnect Management System ==========\n"))
	a.println("Welcome to LaundryConnect CLI!")

	err := a.menu(ctx, "Main Menu", "Exit", []menuItem{
		{"Customer Management", a.customerMenu},
		{"Order Management", a.orderMenu},
		{"Service Management", a.serviceMenu},
		{"Location Management", a.locationMenu},
		{"Reports", a.reportMenu},
	})
	if err != nil && !errors.Is(err, ErrQuit) {
		return err
	}

	a.println("Thank you for using LaundryConnect CLI!")
	a.logger.Info("session finished")
	return nil
}

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

// menu loops until the operator picks 0. Action failures are reported and the loop goes on;
// only ErrQuit and context cancellation leave it early.
func (a *App) menu(ctx context.Context, title, back string, items []menuItem) error {
	for {
		a.heading(title)
		for i, item := range items {
			a.printf("%d. %s\n", i+1, item.label)
		}
		a.printf("0. %s\n", back)

		choice, err := a.ask("\nEnter your choice: ")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		index, convErr := strconv.Atoi(choice)
		if convErr != nil || index < 1 || index > len(items) {
			a.println(a.color.Yellow("\nInvalid choice. Please try again."))
			continue
		}

		if err = items[index-1].action(ctx); err != nil {
			if errors.Is(err, ErrQuit) || ctx.Err() != nil {
				return err
			}
			a.fail(err)
		}
	}
}

func (a *App) customerMenu(ctx context.Context) error {
	return a.menu(ctx, "Customer Management", "Back to Main Menu", []menuItem{
		{"View All Customers", a.listCustomers},
		{"Find Customer by ID", a.findCustomerByID},
		{"Find Customer by Phone", a.findCustomerByPhone},
		{"Add New Customer", a.addCustomer},
		{"Update Customer", a.updateCustomer},
		{"Delete Customer", a.deleteCustomer},
		{"View Customer Orders", a.viewCustomerOrders},
	})
}

func (a *App) orderMenu(ctx context.Context) error {
	return a.menu(ctx, "Order Management", "Back to Main Menu", []menuItem{
		{"View All Orders", a.listOrders},
		{"Find Order by ID", a.findOrderByID},
		{"Create New Order", a.createOrder},
		{"Update Order Status", a.updateOrderStatus},
		{"Delete Order", a.deleteOrder},
		{"View Order Status History", a.viewOrderHistory},
		{"Reschedule Pickup", a.rescheduleOrder},
		{"View Orders by Status", a.listOrdersByStatus},
	})
}

func (a *App) serviceMenu(ctx context.Context) error {
	return a.menu(ctx, "Service Management", "Back to Main Menu", []menuItem{
		{"View All Services", a.listServices},
		{"Find Service by ID", a.findServiceByID},
		{"Add New Service", a.addService},
		{"Update Service", a.updateService},
		{"Delete Service", a.deleteService},
		{"Find Service by Name", a.findServiceByName},
	})
}

func (a *App) locationMenu(ctx context.Context) error {
	return a.menu(ctx, "Location Management", "Back to Main Menu", []menuItem{
		{"View All Locations", a.listLocations},
		{"Find Location by ID", a.findLocationByID},
		{"Add New Location", a.addLocation},
		{"Update Location", a.updateLocation},
		{"Delete Location", a.deleteLocation},
	})
}

func (a *App) reportMenu(ctx context.Context) error {
	return a.menu(ctx, "Reports", "Back to Main Menu", []menuItem{
		{"Daily Orders Report", a.dailyReport},
		{"Customer Report", a.customerReport},
	})
}

// fail shows err to the operator. Failures outside the expected taxonomy are logged too.
func (a *App) fail(err error) {
	switch {
	case errs.IsInvalidInput(err):
		a.println(a.color.Red("\nError: " + err.Error()))
	case errs.IsNotFound(err):
		a.println(a.color.Yellow("\n" + err.Error()))
	case errs.IsConstraintViolation(err):
		a.println(a.color.Red("\nRefused: " + err.Error()))
	default:
		a.logger.Error("operation failed", "error", err)
		a.println(a.color.Red("\nAn error occurred: " + err.Error()))
	}
}

// confirm asks a y/n question. Anything but y cancels.
func (a *App) confirm(question string) (bool, error) {
	answer, err := a.ask(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	if answer == "y" || answer == "Y" {
		return true, nil
	}
	a.println("\nDelete operation canceled.")
	return false, nil
}

func (a *App) ask(label string) (string, error) {
	return a.prompter.Prompt(label)
}

func (a *App) heading(title string) {
	a.println(a.color.Cyan(fmt.Sprintf("\n===== %s =====", title), color.B))
}

func (a *App) success(msg string) {
	a.println(a.color.Green("\n" + msg))
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
