package accounting

import (
	"context"

	"github.com/accounting/backend/internal/domain/accounting"
	"github.com/accounting/backend/internal/domain/shared"
)

// InvoiceService handles invoice lifecycle and line item operations
type InvoiceService struct {
	invoiceRepo accounting.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo accounting.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// Create stores a new invoice and returns its representation
func (s *InvoiceService) Create(ctx context.Context, req InvoiceRequest) (*InvoiceResponse, error) {
	invoice := InvoiceFromRequest(req)
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// GetByID returns the invoice with the given id
func (s *InvoiceService) GetByID(ctx context.Context, id uint) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List returns all invoices
func (s *InvoiceService) List(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// Update replaces the stored fields of an existing invoice. Line items are
// managed through the item operations and are left untouched here.
func (s *InvoiceService) Update(ctx context.Context, id uint, req InvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice.CustomerID = req.CustomerID
	invoice.Customer = nil
	invoice.InvoiceDate = req.InvoiceDate
	invoice.TotalAmount = req.TotalAmount
	invoice.Closed = req.Closed

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// Delete removes the invoice with the given id together with its items
func (s *InvoiceService) Delete(ctx context.Context, id uint) error {
	return s.invoiceRepo.Delete(ctx, id)
}

// Close marks an invoice as closed. Closing an already closed invoice fails.
func (s *InvoiceService) Close(ctx context.Context, id uint) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.Close(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// AddItem appends a line item to an invoice
func (s *InvoiceService) AddItem(ctx context.Context, invoiceID uint, req InvoiceItemRequest) error {
	item, err := InvoiceItemFromRequest(req)
	if err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	invoice.AddItem(item)
	return s.invoiceRepo.Save(ctx, invoice)
}

// GetItem returns a single line item of an invoice
func (s *InvoiceService) GetItem(ctx context.Context, invoiceID, itemID uint) (*InvoiceItemResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	item, ok := invoice.Item(itemID)
	if !ok {
		return nil, shared.ErrNotFound
	}
	resp := ToInvoiceItemResponse(item)
	return &resp, nil
}

// ListItems returns all line items of an invoice
func (s *InvoiceService) ListItems(ctx context.Context, invoiceID uint) ([]InvoiceItemResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceItemResponse, len(invoice.Items))
	for i := range invoice.Items {
		responses[i] = ToInvoiceItemResponse(&invoice.Items[i])
	}
	return responses, nil
}

// UpdateItemQuantity changes the quantity of an existing line item
func (s *InvoiceService) UpdateItemQuantity(ctx context.Context, invoiceID, itemID uint, quantity int) (*InvoiceItemResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.SetItemQuantity(itemID, quantity); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	item, _ := invoice.Item(itemID)
	resp := ToInvoiceItemResponse(item)
	return &resp, nil
}

// RemoveItem drops a line item from an invoice. Once the invoice is found,
// removal succeeds even when the item is already gone.
func (s *InvoiceService) RemoveItem(ctx context.Context, invoiceID, itemID uint) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	invoice.RemoveItem(itemID)
	return s.invoiceRepo.Save(ctx, invoice)
}
