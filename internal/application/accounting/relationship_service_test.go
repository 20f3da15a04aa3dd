package accounting

import (
	"context"
	"testing"

	"github.com/accounting/backend/internal/domain/accounting"
	"github.com/accounting/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRelationshipService_Assign(t *testing.T) {
	t.Run("links customer to invoice", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerRepo.On("FindByID", ctx, uint(5)).Return(&accounting.Customer{ID: 5}, nil)
		invoiceRepo.On("FindByID", ctx, uint(3)).Return(&accounting.Invoice{ID: 3}, nil)
		invoiceRepo.On("Save", ctx, mock.MatchedBy(func(inv *accounting.Invoice) bool {
			return inv.BelongsTo(5)
		})).Return(nil)

		require.NoError(t, service.Assign(ctx, 5, 3))
		customerRepo.AssertExpectations(t)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("missing customer fails before invoice lookup", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerRepo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.Assign(ctx, 99, 3), shared.ErrNotFound)
		invoiceRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing invoice fails", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerRepo.On("FindByID", ctx, uint(5)).Return(&accounting.Customer{ID: 5}, nil)
		invoiceRepo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.Assign(ctx, 5, 99), shared.ErrNotFound)
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("duplicate link fails without saving", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		linked := &accounting.Invoice{ID: 3}
		require.NoError(t, linked.LinkCustomer(5))

		customerRepo.On("FindByID", ctx, uint(5)).Return(&accounting.Customer{ID: 5}, nil)
		invoiceRepo.On("FindByID", ctx, uint(3)).Return(linked, nil)

		assert.ErrorIs(t, service.Assign(ctx, 5, 3), shared.ErrAlreadyLinked)
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reassigning a different customer overwrites the link", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		linked := &accounting.Invoice{ID: 3}
		require.NoError(t, linked.LinkCustomer(5))

		customerRepo.On("FindByID", ctx, uint(8)).Return(&accounting.Customer{ID: 8}, nil)
		invoiceRepo.On("FindByID", ctx, uint(3)).Return(linked, nil)
		invoiceRepo.On("Save", ctx, mock.MatchedBy(func(inv *accounting.Invoice) bool {
			return inv.BelongsTo(8)
		})).Return(nil)

		require.NoError(t, service.Assign(ctx, 8, 3))
		invoiceRepo.AssertExpectations(t)
	})
}

func TestRelationshipService_Remove(t *testing.T) {
	t.Run("unlinks customer from invoice", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		linked := &accounting.Invoice{ID: 3}
		require.NoError(t, linked.LinkCustomer(5))

		customerRepo.On("FindByID", ctx, uint(5)).Return(&accounting.Customer{ID: 5}, nil)
		invoiceRepo.On("FindByID", ctx, uint(3)).Return(linked, nil)
		invoiceRepo.On("Save", ctx, mock.MatchedBy(func(inv *accounting.Invoice) bool {
			return inv.CustomerID == nil
		})).Return(nil)

		require.NoError(t, service.Remove(ctx, 5, 3))
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("removing an absent link fails without saving", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerRepo.On("FindByID", ctx, uint(5)).Return(&accounting.Customer{ID: 5}, nil)
		invoiceRepo.On("FindByID", ctx, uint(3)).Return(&accounting.Invoice{ID: 3}, nil)

		assert.ErrorIs(t, service.Remove(ctx, 5, 3), shared.ErrNotLinked)
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestRelationshipService_InvoicesForCustomer(t *testing.T) {
	t.Run("returns linked invoices", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerID := uint(5)
		customerRepo.On("FindByID", ctx, customerID).Return(&accounting.Customer{ID: 5}, nil)
		invoiceRepo.On("FindByCustomerID", ctx, customerID).Return([]accounting.Invoice{
			{ID: 3, CustomerID: &customerID, TotalAmount: 100},
		}, nil)

		resp, err := service.InvoicesForCustomer(ctx, 5)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "3", resp[0].InvoiceID)
	})

	t.Run("missing customer fails", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerRepo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

		_, err := service.InvoicesForCustomer(ctx, 99)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		invoiceRepo.AssertNotCalled(t, "FindByCustomerID", mock.Anything, mock.Anything)
	})
}

func TestRelationshipService_CustomersForInvoice(t *testing.T) {
	t.Run("returns the linked customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerID := uint(5)
		invoiceRepo.On("FindByID", ctx, uint(3)).Return(&accounting.Invoice{ID: 3, CustomerID: &customerID}, nil)
		customerRepo.On("FindByID", ctx, customerID).Return(&accounting.Customer{ID: 5, FirstName: "Ada"}, nil)

		resp, err := service.CustomersForInvoice(ctx, 3)

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Ada", resp[0].FirstName)
	})

	t.Run("unlinked invoice yields empty result", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		invoiceRepo.On("FindByID", ctx, uint(3)).Return(&accounting.Invoice{ID: 3}, nil)

		resp, err := service.CustomersForInvoice(ctx, 3)

		require.NoError(t, err)
		assert.Empty(t, resp)
		customerRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("dangling customer reference yields empty result", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewRelationshipService(customerRepo, invoiceRepo)
		ctx := context.Background()

		customerID := uint(5)
		invoiceRepo.On("FindByID", ctx, uint(3)).Return(&accounting.Invoice{ID: 3, CustomerID: &customerID}, nil)
		customerRepo.On("FindByID", ctx, customerID).Return(nil, shared.ErrNotFound)

		resp, err := service.CustomersForInvoice(ctx, 3)

		require.NoError(t, err)
		assert.Empty(t, resp)
	})
}
