package accounting

import (
	"context"
	"errors"

	"github.com/accounting/backend/internal/domain/accounting"
	"github.com/accounting/backend/internal/domain/shared"
)

// RelationshipService manages the link between customers and invoices. The
// link lives on the invoice side only; a customer's invoices are always
// derived by query.
type RelationshipService struct {
	customerRepo accounting.CustomerRepository
	invoiceRepo  accounting.InvoiceRepository
}

// NewRelationshipService creates a new RelationshipService
func NewRelationshipService(customerRepo accounting.CustomerRepository, invoiceRepo accounting.InvoiceRepository) *RelationshipService {
	return &RelationshipService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Assign links a customer to an invoice. Both sides must exist; assigning
// the customer an invoice already references fails with ErrAlreadyLinked.
func (s *RelationshipService) Assign(ctx context.Context, customerID, invoiceID uint) error {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := invoice.LinkCustomer(customer.ID); err != nil {
		return err
	}

	return s.invoiceRepo.Save(ctx, invoice)
}

// Remove unlinks a customer from an invoice. Fails with ErrNotLinked unless
// the invoice currently references this customer.
func (s *RelationshipService) Remove(ctx context.Context, customerID, invoiceID uint) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := invoice.UnlinkCustomer(customerID); err != nil {
		return err
	}

	return s.invoiceRepo.Save(ctx, invoice)
}

// InvoicesForCustomer returns all invoices referencing the given customer
func (s *RelationshipService) InvoicesForCustomer(ctx context.Context, customerID uint) ([]InvoiceResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// CustomersForInvoice returns the customers linked to an invoice. An invoice
// references at most one customer, so the result holds zero or one entries.
// A dangling customer reference yields an empty result rather than an error.
func (s *RelationshipService) CustomersForInvoice(ctx context.Context, invoiceID uint) ([]CustomerResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.CustomerID == nil {
		return []CustomerResponse{}, nil
	}

	customer, err := s.customerRepo.FindByID(ctx, *invoice.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return []CustomerResponse{}, nil
		}
		return nil, err
	}

	return []CustomerResponse{ToCustomerResponse(customer)}, nil
}
