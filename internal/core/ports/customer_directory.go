package ports

import (
	"context"
)

// CustomerContacts holds the delivery channels registered for a customer.
// Either channel may be empty; senders skip channels without an address.
type CustomerContacts struct {
	CustomerID  string
	Name        string
	PhoneNumber string
	Email       string
}

// CustomerDirectory resolves customer identifiers to contact channels.
// Implementations return errs.ObjectNotFoundError for unknown customers.
type CustomerDirectory interface {
	Contacts(ctx context.Context, customerID string) (CustomerContacts, error)
}
