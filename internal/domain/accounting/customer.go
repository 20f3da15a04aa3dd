package accounting

import (
	"strings"
	"time"
)

// Customer represents a billable party in the accounting context.
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(200);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// Update overwrites the customer's caller-supplied fields. The identifier
// is never touched here; it is assigned by the store and preserved across
// updates.
func (c *Customer) Update(firstName, lastName, email string) {
	c.FirstName = firstName
	c.LastName = lastName
	c.Email = email
	c.UpdatedAt = time.Now()
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
