package persistence

import (
	"context"
	"errors"

	"github.com/accounting/backend/internal/domain/accounting"
	"github.com/accounting/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM. Invoices
// are persisted as aggregates: Save writes the invoice row and its items in
// one transaction and removes stored items that are no longer part of the
// aggregate.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID with items and customer preloaded
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uint) (*accounting.Invoice, error) {
	var invoice accounting.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll returns all invoices with items preloaded, ordered by id
func (r *GormInvoiceRepository) FindAll(ctx context.Context) ([]accounting.Invoice, error) {
	var invoices []accounting.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("id").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindByCustomerID returns all invoices referencing the given customer
func (r *GormInvoiceRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]accounting.Invoice, error) {
	var invoices []accounting.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice together with its items. Items removed
// from the aggregate since it was loaded are deleted from storage.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *accounting.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(invoice).Error; err != nil {
			return err
		}

		keep := make([]uint, 0, len(invoice.Items))
		for _, item := range invoice.Items {
			keep = append(keep, item.ID)
		}

		prune := tx.Where("invoice_id = ?", invoice.ID)
		if len(keep) > 0 {
			prune = prune.Where("id NOT IN ?", keep)
		}
		return prune.Delete(&accounting.InvoiceItem{}).Error
	})
}

// Delete deletes an invoice and its items
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&accounting.InvoiceItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&accounting.Invoice{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ accounting.InvoiceRepository = (*GormInvoiceRepository)(nil)
