package accounting

import (
	"context"

	"github.com/accounting/backend/internal/domain/accounting"
)

// CustomerService handles customer lifecycle operations
type CustomerService struct {
	customerRepo accounting.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo accounting.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create stores a new customer and returns its representation
func (s *CustomerService) Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	customer := CustomerFromRequest(req)
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetByID returns the customer with the given id
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, nil
}

// Update replaces the stored fields of an existing customer
func (s *CustomerService) Update(ctx context.Context, id uint, req CustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Update(req.FirstName, req.LastName, req.Email)

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Delete removes the customer with the given id
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.customerRepo.Delete(ctx, id)
}
