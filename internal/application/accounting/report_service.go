package accounting

import (
	"context"
	"fmt"
	"strings"

	"github.com/accounting/backend/internal/domain/accounting"
	"github.com/shopspring/decimal"
)

// ReportService derives financial figures and plain-text statements from the
// stored invoices, customers and products. Nothing is persisted; every
// report is computed from current data on each call.
type ReportService struct {
	invoiceRepo  accounting.InvoiceRepository
	customerRepo accounting.CustomerRepository
	productRepo  accounting.ProductRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	invoiceRepo accounting.InvoiceRepository,
	customerRepo accounting.CustomerRepository,
	productRepo accounting.ProductRepository,
) *ReportService {
	return &ReportService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// TotalRevenue sums the amounts of all invoices
func (s *ReportService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range invoices {
		total = total.Add(decimal.NewFromFloat(invoices[i].TotalAmount))
	}
	return total, nil
}

// TotalExpenses values the line items of all invoices at current product
// prices. Lines whose product cannot be resolved are skipped.
func (s *ReportService) TotalExpenses(ctx context.Context) (decimal.Decimal, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	prices, err := s.productPrices(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return itemsValue(invoices, prices), nil
}

// TotalAssets values the line items of all customer-linked invoices at
// current product prices
func (s *ReportService) TotalAssets(ctx context.Context) (decimal.Decimal, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	prices, err := s.productPrices(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range customers {
		invoices, err := s.invoiceRepo.FindByCustomerID(ctx, customers[i].ID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(itemsValue(invoices, prices))
	}
	return total, nil
}

// TotalLiabilities sums the amounts of unpaid invoices
func (s *ReportService) TotalLiabilities(ctx context.Context) (decimal.Decimal, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range invoices {
		if !invoices[i].IsPaid() {
			total = total.Add(decimal.NewFromFloat(invoices[i].TotalAmount))
		}
	}
	return total, nil
}

// TotalEquity is assets minus liabilities
func (s *ReportService) TotalEquity(ctx context.Context) (decimal.Decimal, error) {
	assets, err := s.TotalAssets(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	liabilities, err := s.TotalLiabilities(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return assets.Sub(liabilities), nil
}

// NetIncome is revenue minus expenses
func (s *ReportService) NetIncome(ctx context.Context) (decimal.Decimal, error) {
	revenue, err := s.TotalRevenue(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	expenses, err := s.TotalExpenses(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return revenue.Sub(expenses), nil
}

// BalanceSheet renders the balance sheet as plain text
func (s *ReportService) BalanceSheet(ctx context.Context) (string, error) {
	assets, err := s.TotalAssets(ctx)
	if err != nil {
		return "", err
	}
	liabilities, err := s.TotalLiabilities(ctx)
	if err != nil {
		return "", err
	}
	equity := assets.Sub(liabilities)

	var b strings.Builder
	fmt.Fprintf(&b, "Balance Sheet\n")
	fmt.Fprintf(&b, "---------------\n")
	fmt.Fprintf(&b, "Assets: %s\n", assets)
	fmt.Fprintf(&b, "Liabilities: %s\n", liabilities)
	fmt.Fprintf(&b, "Equity: %s\n", equity)
	fmt.Fprintf(&b, "---------------\n")
	return b.String(), nil
}

// IncomeStatement renders the income statement as plain text
func (s *ReportService) IncomeStatement(ctx context.Context) (string, error) {
	revenue, err := s.TotalRevenue(ctx)
	if err != nil {
		return "", err
	}
	expenses, err := s.TotalExpenses(ctx)
	if err != nil {
		return "", err
	}
	netIncome := revenue.Sub(expenses)

	var b strings.Builder
	fmt.Fprintf(&b, "Income Statement\n")
	fmt.Fprintf(&b, "---------------\n")
	fmt.Fprintf(&b, "Total Revenue: %s\n", revenue)
	fmt.Fprintf(&b, "Total Expenses: %s\n", expenses)
	fmt.Fprintf(&b, "Net Income: %s\n", netIncome)
	fmt.Fprintf(&b, "---------------\n")
	return b.String(), nil
}

// CashFlowStatement is not implemented yet and renders an empty report.
// TODO: classify invoice amounts into operating/investing/financing buckets
// once payment records exist.
func (s *ReportService) CashFlowStatement(ctx context.Context) (string, error) {
	return "", nil
}

// Totals computes all derived figures in one pass-friendly payload
func (s *ReportService) Totals(ctx context.Context) (*FinancialTotalsResponse, error) {
	revenue, err := s.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.TotalExpenses(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := s.TotalAssets(ctx)
	if err != nil {
		return nil, err
	}
	liabilities, err := s.TotalLiabilities(ctx)
	if err != nil {
		return nil, err
	}

	return &FinancialTotalsResponse{
		TotalRevenue:     revenue,
		TotalExpenses:    expenses,
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      assets.Sub(liabilities),
		NetIncome:        revenue.Sub(expenses),
	}, nil
}

// productPrices loads the catalog once and indexes prices by product id
func (s *ReportService) productPrices(ctx context.Context) (map[uint]decimal.Decimal, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	prices := make(map[uint]decimal.Decimal, len(products))
	for i := range products {
		prices[products[i].ID] = products[i].Price
	}
	return prices, nil
}

// itemsValue values invoice line items at the given prices, skipping lines
// whose product is not in the price index
func itemsValue(invoices []accounting.Invoice, prices map[uint]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i := range invoices {
		for _, item := range invoices[i].Items {
			price, ok := prices[item.ProductID]
			if !ok {
				continue
			}
			total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return total
}
