package customer_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer with optional fields", func(t *testing.T) {
		c, err := customer.NewCustomer("John Doe", "0712345678", "john@example.com", "  ", createdAt)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsZero())
		assert.Equal(t, "John Doe", c.Name().String())
		assert.Equal(t, "0712345678", c.Phone().String())
		assert.Equal(t, "john@example.com", *c.Email())
		assert.Nil(t, c.Address())
		assert.Equal(t, createdAt, c.CreatedAt())
	})

	t.Run("should keep phone formatting", func(t *testing.T) {
		c, err := customer.NewCustomer("Jane Smith", "+254 723 456789", "", "", createdAt)

		require.NoError(t, err)
		assert.Equal(t, "+254 723 456789", c.Phone().String())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		c, err := customer.NewCustomer("Al", "12345", "", "", createdAt)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.True(t, errs.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "name must be at least 3 characters")
		assert.Contains(t, err.Error(), "phone digits")
	})
}

func TestCustomer_Update(t *testing.T) {
	t.Run("should change only requested fields", func(t *testing.T) {
		c, err := customer.NewCustomer("John Doe", "0712345678", "john@example.com", "Nairobi", createdAt)
		require.NoError(t, err)

		err = c.Update(customer.UpdateRequest{Name: strPtr("John Kamau"), Email: strPtr("")})

		require.NoError(t, err)
		assert.Equal(t, "John Kamau", c.Name().String())
		assert.Equal(t, "0712345678", c.Phone().String())
		assert.Nil(t, c.Email())
		assert.Equal(t, "Nairobi", *c.Address())
	})

	t.Run("should leave customer untouched when any field is invalid", func(t *testing.T) {
		c, err := customer.NewCustomer("John Doe", "0712345678", "", "", createdAt)
		require.NoError(t, err)

		err = c.Update(customer.UpdateRequest{Name: strPtr("Johnny"), Phone: strPtr("123")})

		require.Error(t, err)
		assert.Equal(t, "John Doe", c.Name().String())
		assert.Equal(t, "0712345678", c.Phone().String())
	})
}

func TestCustomer_AssignID(t *testing.T) {
	c, err := customer.NewCustomer("John Doe", "0712345678", "", "", createdAt)
	require.NoError(t, err)

	require.Error(t, c.AssignID(0))
	require.NoError(t, c.AssignID(5))
	require.NoError(t, c.AssignID(5))
	require.ErrorIs(t, c.AssignID(6), customer.ErrIdentityAlreadyAssigned)
	assert.Equal(t, kernel.ID(5), c.ID())
}

func TestRestoreCustomer(t *testing.T) {
	c, err := customer.RestoreCustomer(3, "Michael Wanjau", "0734567890", nil, strPtr("Thika Rd"), createdAt)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), c.ID())
	assert.Equal(t, "Thika Rd", *c.Address())
}

func TestCustomer_ValidateZeroValue(t *testing.T) {
	var c *customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)

	require.ErrorIs(t, (&customer.Customer{}).Validate(), customer.ErrCustomerIsNotConstructed)
}
