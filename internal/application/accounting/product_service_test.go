package accounting

import (
	"context"
	"testing"

	"github.com/accounting/backend/internal/domain/accounting"
	"github.com/accounting/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo)
	ctx := context.Background()

	price := decimal.RequireFromString("19.99")
	repo.On("Save", ctx, mock.MatchedBy(func(p *accounting.Product) bool {
		return p.ID == 0 && p.Name == "Ledger" && p.Price.Equal(price)
	})).Return(nil)

	resp, err := service.Create(ctx, ProductRequest{
		Name:     "Ledger",
		Category: "stationery",
		Price:    price,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ledger", resp.Name)
	assert.True(t, resp.Price.Equal(price))
	repo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo)
	ctx := context.Background()

	existing := &accounting.Product{ID: 3, Name: "Ledger", Price: decimal.RequireFromString("19.99")}
	newPrice := decimal.RequireFromString("24.50")
	repo.On("FindByID", ctx, uint(3)).Return(existing, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(p *accounting.Product) bool {
		return p.ID == 3 && p.Name == "Journal" && p.Price.Equal(newPrice)
	})).Return(nil)

	resp, err := service.Update(ctx, 3, ProductRequest{
		Name:     "Journal",
		Category: "stationery",
		Price:    newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.ProductID)
	assert.True(t, resp.Price.Equal(newPrice))
	repo.AssertExpectations(t)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

	resp, err := service.Update(ctx, 99, ProductRequest{Name: "Nothing"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_List(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]accounting.Product{
		{ID: 1, Name: "Ledger"},
		{ID: 2, Name: "Journal"},
	}, nil)

	resp, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, uint(2), resp[1].ProductID)
	repo.AssertExpectations(t)
}
