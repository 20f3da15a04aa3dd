package accounting

import (
	"time"

	"github.com/accounting/backend/internal/domain/shared"
)

// InvoiceItem is a product line inside an invoice. It only exists as part
// of its owning invoice and is persisted and deleted with it. The product
// reference is not validated at write time; reports resolve it lazily and
// skip lines whose product no longer exists.
type InvoiceItem struct {
	ID        uint `gorm:"primaryKey"`
	InvoiceID uint `gorm:"index;not null"`
	ProductID uint `gorm:"not null"`
	Quantity  int  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Invoice is the aggregate root for billing documents. It optionally
// references the customer it is billed to; the customer side of the
// relationship is derived by query, never stored as a collection.
type Invoice struct {
	ID          uint      `gorm:"primaryKey"`
	CustomerID  *uint     `gorm:"index"`
	Customer    *Customer `gorm:"constraint:OnDelete:SET NULL"`
	InvoiceDate time.Time
	TotalAmount float64       `gorm:"not null;default:0"`
	Closed      bool          `gorm:"not null;default:false"`
	Items       []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// IsPaid reports whether the invoice counts as paid. Payment state is
// derived from the amount: strictly positive means paid, zero or negative
// means outstanding. Unpaid invoices feed the liabilities total.
func (i *Invoice) IsPaid() bool {
	return i.TotalAmount > 0
}

// Close marks the invoice as closed. Closing is one-way; closing an
// already closed invoice fails with ErrAlreadyClosed.
func (i *Invoice) Close() error {
	if i.Closed {
		return shared.ErrAlreadyClosed
	}
	i.Closed = true
	i.UpdatedAt = time.Now()
	return nil
}

// LinkCustomer points the invoice at the given customer. Linking the
// customer it already references fails with ErrAlreadyLinked; linking a
// different customer overwrites the reference.
func (i *Invoice) LinkCustomer(customerID uint) error {
	if i.CustomerID != nil && *i.CustomerID == customerID {
		return shared.ErrAlreadyLinked
	}
	id := customerID
	i.CustomerID = &id
	i.Customer = nil
	i.UpdatedAt = time.Now()
	return nil
}

// UnlinkCustomer clears the customer reference. It fails with
// ErrNotLinked unless the invoice currently references this customer.
func (i *Invoice) UnlinkCustomer(customerID uint) error {
	if i.CustomerID == nil || *i.CustomerID != customerID {
		return shared.ErrNotLinked
	}
	i.CustomerID = nil
	i.Customer = nil
	i.UpdatedAt = time.Now()
	return nil
}

// BelongsTo reports whether the invoice references the given customer.
func (i *Invoice) BelongsTo(customerID uint) bool {
	return i.CustomerID != nil && *i.CustomerID == customerID
}

// AddItem appends an item to the invoice.
func (i *Invoice) AddItem(item InvoiceItem) {
	item.InvoiceID = i.ID
	i.Items = append(i.Items, item)
	i.UpdatedAt = time.Now()
}

// Item returns the item with the given id, if present.
func (i *Invoice) Item(itemID uint) (*InvoiceItem, bool) {
	for idx := range i.Items {
		if i.Items[idx].ID == itemID {
			return &i.Items[idx], true
		}
	}
	return nil, false
}

// SetItemQuantity updates the quantity of the item with the given id.
// Returns ErrNotFound if no such item exists on this invoice.
func (i *Invoice) SetItemQuantity(itemID uint, quantity int) error {
	item, ok := i.Item(itemID)
	if !ok {
		return shared.ErrNotFound
	}
	item.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// RemoveItem drops the item with the given id from the invoice. Removing
// an absent item is a no-op: once the invoice is located, item deletion
// always succeeds.
func (i *Invoice) RemoveItem(itemID uint) {
	for idx := range i.Items {
		if i.Items[idx].ID == itemID {
			i.Items = append(i.Items[:idx], i.Items[idx+1:]...)
			i.UpdatedAt = time.Now()
			return
		}
	}
}
