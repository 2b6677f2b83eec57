// Package customerrepo resolves customer contact channels from the database.
package customerrepo

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// CustomerDTO represents the database structure for customer contacts.
type CustomerDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	PhoneNumber string
	Email       string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// GormCustomerDirectory implements CustomerDirectory using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

// NewGormCustomerDirectory creates a new GORM customer directory.
func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

// Contacts retrieves the contact channels registered for a customer.
// Returns errs.ObjectNotFoundError for unknown customers.
func (d *GormCustomerDirectory) Contacts(ctx context.Context, customerID string) (ports.CustomerContacts, error) {
	if customerID == "" {
		return ports.CustomerContacts{}, errs.NewValueIsRequiredError("customerId")
	}

	var dto CustomerDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CustomerContacts{}, errs.NewObjectNotFoundError("customerId", customerID)
		}
		return ports.CustomerContacts{}, err
	}

	return ports.CustomerContacts{
		CustomerID:  dto.ID,
		Name:        dto.Name,
		PhoneNumber: dto.PhoneNumber,
		Email:       dto.Email,
	}, nil
}
