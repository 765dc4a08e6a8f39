package cli

import (
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/application/usecases/queries"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"
)

const dateTimeLayout = "2006-01-02 15:04"

func newTable() *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true
	return table
}

// money prints an amount with thousands separators and two decimals.
func money(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

func quantity(d decimal.Decimal, unit string) string {
	return d.String() + " " + unit
}

func optional(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (a *App) since(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Local().Format(dateTimeLayout), humanize.RelTime(t, a.clock.Now(), "ago", "from now"))
}

func (a *App) printOrders(orders []queries.OrderView) {
	table := newTable()
	table.RightAlign(4)
	table.AddRow("ID", "Customer", "Service", "Status", "Total")
	for _, o := range orders {
		table.AddRow(o.ID, o.CustomerName, o.ServiceName, o.Status, money(o.TotalPrice))
	}
	a.println(table)
}

func (a *App) printCustomer(c queries.CustomerView) {
	table := newTable()
	table.AddRow("Customer ID:", c.ID)
	table.AddRow("Name:", c.Name)
	table.AddRow("Phone:", c.Phone)
	table.AddRow("Email:", optional(c.Email, "None"))
	table.AddRow("Address:", optional(c.Address, "None"))
	a.println()
	a.println(table)
}

func (a *App) printService(s queries.ServiceView) {
	table := newTable()
	table.AddRow("Service ID:", s.ID)
	table.AddRow("Name:", s.Name)
	table.AddRow("Description:", optional(s.Description, "None"))
	table.AddRow("Price:", money(s.PricePerUnit)+" per "+s.Unit)
	a.println()
	a.println(table)
}

func (a *App) printLocation(l queries.LocationView) {
	table := newTable()
	table.AddRow("Location ID:", l.ID)
	table.AddRow("Name:", l.Name)
	table.AddRow("Address:", l.Address)
	table.AddRow("Phone:", l.Phone)
	table.AddRow("Email:", optional(l.Email, "None"))
	a.println()
	a.println(table)
}

func (a *App) printOrder(o queries.OrderView) {
	table := newTable()
	table.AddRow("Order ID:", o.ID)
	table.AddRow("Customer:", fmt.Sprintf("%s (ID: %d)", o.CustomerName, o.CustomerID))
	table.AddRow("Service:", fmt.Sprintf("%s (ID: %d)", o.ServiceName, o.ServiceID))
	table.AddRow("Weight:", quantity(o.Weight, o.Unit))
	table.AddRow("Total Price:", money(o.TotalPrice))
	table.AddRow("Status:", o.Status)
	table.AddRow("Pickup Date:", o.PickupDate.Format(time.DateOnly))
	table.AddRow("Pickup Time:", o.PickupTime)
	table.AddRow("Special Instructions:", optional(o.SpecialInstructions, "None"))
	table.AddRow("Created At:", a.since(o.CreatedAt))
	a.println()
	a.println(table)
}
