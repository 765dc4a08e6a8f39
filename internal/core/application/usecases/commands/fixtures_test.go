package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"

	"github.com/juju/clock/testclock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local)

func newClock() *testclock.Clock {
	return testclock.NewClock(now)
}

func today() kernel.Date {
	return kernel.NewDate(now)
}

func johnDoe(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(1, "John Doe", "0712345678", nil, nil, now)
	require.NoError(t, err)
	return c
}

func washService(t *testing.T) *service.Service {
	t.Helper()
	s, err := service.RestoreService(7, "Wash", nil, kernel.MustNewPrice(200), service.Kilogram, now)
	require.NoError(t, err)
	return s
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		5, 1, 7, kernel.MustNewWeight(2), decimal.NewFromInt(400), status,
		today().AddDays(1), order.Morning, nil, now.Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}
