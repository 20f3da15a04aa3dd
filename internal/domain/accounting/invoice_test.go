package accounting

import (
	"testing"

	"github.com/accounting/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceIsPaid(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		paid   bool
	}{
		{"positive amount is paid", 150.75, true},
		{"zero amount is unpaid", 0, false},
		{"negative amount is unpaid", -20, false},
		{"smallest positive amount is paid", 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Invoice{TotalAmount: tt.amount}
			assert.Equal(t, tt.paid, inv.IsPaid())
		})
	}
}

func TestInvoiceClose(t *testing.T) {
	inv := &Invoice{ID: 1}

	err := inv.Close()
	require.NoError(t, err)
	assert.True(t, inv.Closed)

	// Closing is one-way; a second close is a distinct failure.
	err = inv.Close()
	assert.ErrorIs(t, err, shared.ErrAlreadyClosed)
	assert.True(t, inv.Closed)
}

func TestInvoiceLinkCustomer(t *testing.T) {
	inv := &Invoice{ID: 1}

	require.NoError(t, inv.LinkCustomer(7))
	require.NotNil(t, inv.CustomerID)
	assert.Equal(t, uint(7), *inv.CustomerID)
	assert.True(t, inv.BelongsTo(7))

	// Linking the same customer again is a duplicate-link failure.
	assert.ErrorIs(t, inv.LinkCustomer(7), shared.ErrAlreadyLinked)

	// Linking a different customer overwrites the reference.
	require.NoError(t, inv.LinkCustomer(9))
	assert.Equal(t, uint(9), *inv.CustomerID)
	assert.False(t, inv.BelongsTo(7))
}

func TestInvoiceUnlinkCustomer(t *testing.T) {
	inv := &Invoice{ID: 1}

	assert.ErrorIs(t, inv.UnlinkCustomer(7), shared.ErrNotLinked)

	require.NoError(t, inv.LinkCustomer(7))
	assert.ErrorIs(t, inv.UnlinkCustomer(9), shared.ErrNotLinked)

	require.NoError(t, inv.UnlinkCustomer(7))
	assert.Nil(t, inv.CustomerID)
}

func TestInvoiceItems(t *testing.T) {
	inv := &Invoice{ID: 3}
	inv.AddItem(InvoiceItem{ID: 10, ProductID: 1, Quantity: 2})
	inv.AddItem(InvoiceItem{ID: 11, ProductID: 2, Quantity: 1})

	item, ok := inv.Item(10)
	require.True(t, ok)
	assert.Equal(t, uint(3), item.InvoiceID)
	assert.Equal(t, 2, item.Quantity)

	require.NoError(t, inv.SetItemQuantity(11, 5))
	item, ok = inv.Item(11)
	require.True(t, ok)
	assert.Equal(t, 5, item.Quantity)

	assert.ErrorIs(t, inv.SetItemQuantity(99, 5), shared.ErrNotFound)

	inv.RemoveItem(10)
	_, ok = inv.Item(10)
	assert.False(t, ok)
	assert.Len(t, inv.Items, 1)

	// Removing an item that is not there is a no-op.
	inv.RemoveItem(10)
	assert.Len(t, inv.Items, 1)
}
