package location_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lname   string
		address string
		phone   string
		wantErr error
	}{
		{name: "valid", lname: "Westlands Branch", address: "Westlands, Nairobi", phone: "+254 712 345 678"},
		{name: "short name", lname: "WB", address: "Westlands", phone: "0712345678", wantErr: errs.ErrValueIsInvalid},
		{name: "blank address", lname: "Westlands", address: "  ", phone: "0712345678", wantErr: errs.ErrValueIsRequired},
		{name: "short phone", lname: "Westlands", address: "Westlands", phone: "12345", wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := location.NewLocation(tt.lname, tt.address, tt.phone, "", createdAt)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, l)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.lname, l.Name().String())
			assert.Equal(t, tt.phone, l.Phone().String())
			assert.Nil(t, l.Email())
			assert.True(t, l.ID().IsZero())
		})
	}
}

func TestLocation_Update(t *testing.T) {
	l, err := location.RestoreLocation(3, "CBD Branch", "Moi Avenue", "0700111222", kernel.Optional("cbd@example.com"), createdAt)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), l.ID())

	empty := ""
	address := "Kenyatta Avenue"
	require.NoError(t, l.Update(location.UpdateRequest{Address: &address, Email: &empty}))
	assert.Equal(t, "Kenyatta Avenue", l.Address())
	assert.Nil(t, l.Email())

	badPhone := "07"
	name := "Central Branch"
	require.Error(t, l.Update(location.UpdateRequest{Name: &name, Phone: &badPhone}))
	assert.Equal(t, "CBD Branch", l.Name().String())

	require.ErrorIs(t, l.AssignID(4), location.ErrIdentityAlreadyAssigned)
}
