package cli

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
)

func (a *App) dailyReport(ctx context.Context) error {
	raw, err := a.ask("\nEnter date (YYYY-MM-DD) or leave blank for today: ")
	if err != nil {
		return err
	}

	date := kernel.Today(a.clock)
	if raw != "" {
		if date, err = kernel.ParseDate("report date", raw); err != nil {
			return err
		}
	}

	query, err := queries.NewDailyReportQuery(date)
	if err != nil {
		return err
	}
	report, err := a.h.DailyReport.Handle(ctx, query)
	if err != nil {
		return err
	}

	a.heading("Daily Orders Report")
	if report.OrderCount == 0 {
		a.printf("\nNo orders found for %s\n", report.Date)
		return nil
	}

	summary := newTable()
	summary.AddRow("Date:", report.Date)
	summary.AddRow("Total Orders:", report.OrderCount)
	summary.AddRow("Total Revenue:", money(report.Revenue))
	a.println()
	a.println(summary)

	a.println("\nOrders by Status:")
	byStatus := newTable()
	byStatus.RightAlign(1)
	for _, sc := range report.ByStatus {
		byStatus.AddRow(capitalize(sc.Status)+":", sc.Count)
	}
	a.println(byStatus)

	a.println("\nDetailed Orders:")
	a.printOrders(report.Orders)
	return nil
}

func (a *App) customerReport(ctx context.Context) error {
	id, err := a.askID("\nEnter customer ID: ")
	if err != nil {
		return err
	}

	query, err := queries.NewCustomerReportQuery(id)
	if err != nil {
		return err
	}
	report, err := a.h.CustomerReport.Handle(ctx, query)
	if err != nil {
		return err
	}

	c := report.Customer
	a.heading("Customer Report: " + c.Name)
	summary := newTable()
	summary.AddRow("Phone:", c.Phone)
	summary.AddRow("Email:", optional(c.Email, "N/A"))
	summary.AddRow("Address:", optional(c.Address, "N/A"))
	summary.AddRow("Total Orders:", report.OrderCount)
	summary.AddRow("Total Spent:", money(report.TotalSpent))
	a.println()
	a.println(summary)

	if len(report.Orders) == 0 {
		a.println("\nNo orders yet.")
		return nil
	}

	a.println("\nOrder History:")
	table := newTable()
	table.RightAlign(3)
	table.AddRow("ID", "Service", "Status", "Total", "Date")
	for _, o := range report.Orders {
		table.AddRow(o.ID, o.ServiceName, o.Status, money(o.TotalPrice), o.CreatedAt.Local().Format(time.DateOnly))
	}
	a.println(table)
	return nil
}
