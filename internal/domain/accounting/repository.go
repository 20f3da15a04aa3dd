package accounting

import "context"

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
}

// InvoiceRepository defines persistence operations for invoices. Invoices
// are loaded and saved as whole aggregates: items travel with their
// invoice, and a save reconciles the stored item set with the aggregate.
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uint) (*Invoice, error)
	FindAll(ctx context.Context) ([]Invoice, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uint) error
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
