package accounting

import (
	"context"

	"github.com/accounting/backend/internal/domain/accounting"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo accounting.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo accounting.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create stores a new product and returns its representation
func (s *ProductService) Create(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	product := ProductFromRequest(req)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID returns the product with the given id
func (s *ProductService) GetByID(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// Update replaces the stored fields of an existing product
func (s *ProductService) Update(ctx context.Context, id uint, req ProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Update(req.Name, req.Category, req.Price)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes the product with the given id
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}
