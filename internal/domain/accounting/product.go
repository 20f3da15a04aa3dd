package accounting

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable product referenced by invoice items.
// Prices are stored as exact decimals; no float arithmetic is performed
// on them anywhere in the reporting pipeline.
type Product struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Category  string          `gorm:"type:varchar(100)"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// Update overwrites the product's caller-supplied fields, preserving the id.
func (p *Product) Update(name, category string, price decimal.Decimal) {
	p.Name = name
	p.Category = category
	p.Price = price
	p.UpdatedAt = time.Now()
}
