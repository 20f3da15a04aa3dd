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

func TestCustomerService_Create(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)
	ctx := context.Background()

	repo.On("Save", ctx, mock.MatchedBy(func(c *accounting.Customer) bool {
		return c.ID == 0 && c.FirstName == "Grace" && c.Email == "grace@example.com"
	})).Return(nil)

	resp, err := service.Create(ctx, CustomerRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Grace", resp.FirstName)
	assert.Equal(t, "Hopper", resp.LastName)
	assert.Equal(t, "grace@example.com", resp.Email)
	repo.AssertExpectations(t)
}

func TestCustomerService_GetByID(t *testing.T) {
	t.Run("returns existing customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		ctx := context.Background()

		repo.On("FindByID", ctx, uint(5)).Return(&accounting.Customer{
			ID:        5,
			FirstName: "Alan",
			LastName:  "Turing",
		}, nil)

		resp, err := service.GetByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, uint(5), resp.CustomerID)
		assert.Equal(t, "Alan", resp.FirstName)
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		ctx := context.Background()

		repo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

		resp, err := service.GetByID(ctx, 99)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertExpectations(t)
	})
}

func TestCustomerService_Update(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)
	ctx := context.Background()

	existing := &accounting.Customer{ID: 5, FirstName: "Alan", LastName: "Turing", Email: "old@example.com"}
	repo.On("FindByID", ctx, uint(5)).Return(existing, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(c *accounting.Customer) bool {
		return c.ID == 5 && c.FirstName == "Alan" && c.Email == "alan@example.com"
	})).Return(nil)

	resp, err := service.Update(ctx, 5, CustomerRequest{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), resp.CustomerID)
	assert.Equal(t, "alan@example.com", resp.Email)
	repo.AssertExpectations(t)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

	resp, err := service.Update(ctx, 99, CustomerRequest{FirstName: "Nobody"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_Delete(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, uint(5)).Return(nil)

	assert.NoError(t, service.Delete(ctx, 5))
	repo.AssertExpectations(t)
}

func TestCustomerService_List(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewCustomerService(repo)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]accounting.Customer{
		{ID: 1, FirstName: "Ada"},
		{ID: 2, FirstName: "Grace"},
	}, nil)

	resp, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, uint(1), resp[0].CustomerID)
	assert.Equal(t, "Grace", resp[1].FirstName)
	repo.AssertExpectations(t)
}
