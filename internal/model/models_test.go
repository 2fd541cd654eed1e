package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	require.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestEntryNormalize(t *testing.T) {
	e := TimeEntry{ID: NewULID(), Timestamp: time.Now(), Type: TypeManual}
	e.Normalize()
	assert.Equal(t, DefaultDescription, e.Description)
	assert.Equal(t, UnassignedCustomer, e.Customer)

	e = TimeEntry{Description: "Dev", Customer: "Acme Inc.", Type: TypeManual}
	e.Normalize()
	assert.Equal(t, "Dev", e.Description)
	assert.Equal(t, "Acme Inc.", e.Customer)

	// Whitespace-only values count as empty.
	e = TimeEntry{Description: "   ", Customer: "\t", Type: TypeManual}
	e.Normalize()
	assert.Equal(t, DefaultDescription, e.Description)
	assert.Equal(t, UnassignedCustomer, e.Customer)
}

func TestEntryValidate(t *testing.T) {
	e := TimeEntry{Description: "Dev", Customer: "Acme", DurationMS: 1000, Type: TypeAutomatic}
	assert.NoError(t, e.Validate())

	e.DurationMS = -1
	var verr *ValidationError
	require.ErrorAs(t, e.Validate(), &verr)
	assert.Equal(t, "duration", verr.Field)

	e.DurationMS = 0
	assert.NoError(t, e.Validate(), "zero-duration entries are permitted")

	e.Type = "stopwatch"
	require.ErrorAs(t, e.Validate(), &verr)
	assert.Equal(t, "type", verr.Field)
}

func TestEntryTypeLabel(t *testing.T) {
	assert.Equal(t, "Manual Entry", TypeManual.Label())
	assert.Equal(t, "Timer", TypeAutomatic.Label())
}

func TestCustomerValidate(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		wantErr  string
	}{
		{"valid minimal", Customer{Name: "Acme Inc."}, ""},
		{"valid full", Customer{
			Name: "Acme Inc.", Email: "info@acme.com", Phone: "+1 555 0100",
			BillingContact: "Jo Smith", BillingEmail: "billing@acme.com", BillingPhone: "555-0101",
		}, ""},
		{"missing name", Customer{Email: "info@acme.com"}, "name"},
		{"blank name", Customer{Name: "   "}, "name"},
		{"bad email", Customer{Name: "Acme", Email: "not-an-email"}, "email"},
		{"email missing tld", Customer{Name: "Acme", Email: "info@acme"}, "email"},
		{"bad billing email", Customer{Name: "Acme", BillingEmail: "billing@"}, "billing_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Field)
		})
	}
}
