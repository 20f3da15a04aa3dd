package accounting

import (
	"strconv"
	"time"

	"github.com/accounting/backend/internal/domain/accounting"
	"github.com/accounting/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerRequest is the request payload for creating or updating a customer
type CustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// CustomerResponse is the response payload for a customer
type CustomerResponse struct {
	CustomerID uint   `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
}

// ProductRequest is the request payload for creating or updating a product
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// ProductResponse is the response payload for a product
type ProductResponse struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
}

// InvoiceItemRequest is the request payload for an invoice line item.
// Identifiers travel as strings on the wire.
type InvoiceItemRequest struct {
	ItemID    string `json:"item_id"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// InvoiceItemResponse is the response payload for an invoice line item
type InvoiceItemResponse struct {
	ItemID    string `json:"item_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// InvoiceRequest is the request payload for creating or updating an invoice
type InvoiceRequest struct {
	CustomerID  *uint     `json:"customer_id"`
	InvoiceDate time.Time `json:"invoice_date"`
	TotalAmount float64   `json:"total_amount"`
	Closed      bool      `json:"closed"`
}

// InvoiceResponse is the response payload for an invoice
type InvoiceResponse struct {
	InvoiceID   string                `json:"invoice_id"`
	Customer    *CustomerResponse     `json:"customer,omitempty"`
	InvoiceDate time.Time             `json:"invoice_date"`
	TotalAmount float64               `json:"total_amount"`
	Closed      bool                  `json:"closed"`
	Items       []InvoiceItemResponse `json:"items"`
}

// FinancialTotalsResponse carries all derived report figures in one payload
type FinancialTotalsResponse struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
	NetIncome        decimal.Decimal `json:"net_income"`
}

// ReportResponse wraps a rendered plain-text report
type ReportResponse struct {
	Report string `json:"report"`
}

// parseID parses a wire identifier into a numeric id. Malformed input is a
// validation failure, not an absence.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, shared.NewDomainError("INVALID_ID", "Identifier must be a non-negative integer")
	}
	return uint(id), nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ToCustomerResponse converts a domain customer to its response payload
func ToCustomerResponse(customer *accounting.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
	}
}

// CustomerFromRequest builds a domain customer from a request payload
func CustomerFromRequest(req CustomerRequest) *accounting.Customer {
	now := time.Now()
	return &accounting.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToProductResponse converts a domain product to its response payload
func ToProductResponse(product *accounting.Product) ProductResponse {
	return ProductResponse{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
	}
}

// ProductFromRequest builds a domain product from a request payload
func ProductFromRequest(req ProductRequest) *accounting.Product {
	now := time.Now()
	return &accounting.Product{
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToInvoiceItemResponse converts a domain invoice item to its response payload
func ToInvoiceItemResponse(item *accounting.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:    formatID(item.ID),
		ProductID: formatID(item.ProductID),
		Quantity:  item.Quantity,
	}
}

// InvoiceItemFromRequest builds a domain invoice item from a request payload
func InvoiceItemFromRequest(req InvoiceItemRequest) (accounting.InvoiceItem, error) {
	productID, err := parseID(req.ProductID)
	if err != nil {
		return accounting.InvoiceItem{}, err
	}
	return accounting.InvoiceItem{
		ProductID: productID,
		Quantity:  req.Quantity,
	}, nil
}

// ToInvoiceResponse converts a domain invoice to its response payload. All
// fields are copied; the embedded customer is included only when preloaded.
func ToInvoiceResponse(invoice *accounting.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(invoice.Items))
	for i := range invoice.Items {
		items[i] = ToInvoiceItemResponse(&invoice.Items[i])
	}

	resp := InvoiceResponse{
		InvoiceID:   formatID(invoice.ID),
		InvoiceDate: invoice.InvoiceDate,
		TotalAmount: invoice.TotalAmount,
		Closed:      invoice.Closed,
		Items:       items,
	}
	if invoice.Customer != nil {
		customer := ToCustomerResponse(invoice.Customer)
		resp.Customer = &customer
	}
	return resp
}

// InvoiceFromRequest builds a domain invoice from a request payload
func InvoiceFromRequest(req InvoiceRequest) *accounting.Invoice {
	now := time.Now()
	return &accounting.Invoice{
		CustomerID:  req.CustomerID,
		InvoiceDate: req.InvoiceDate,
		TotalAmount: req.TotalAmount,
		Closed:      req.Closed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
