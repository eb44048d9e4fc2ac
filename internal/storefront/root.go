package storefront

import (
	"strings"

	"github.com/google/uuid"
)

// RootData is what the root loader hands to the UI at mount time.
type RootData struct {
	IsPreviewModeEnabled bool
	SiteSettings         SiteSettings
}

// Customer identifies a shopper. In preview mode it gates which content is shown.
type Customer struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// NewPreviewCustomer creates a customer record with a fresh ID for preview mode.
func NewPreviewCustomer(email string) *Customer {
	return &Customer{
		ID:    uuid.NewString(),
		Email: strings.TrimSpace(email),
	}
}

// DisplayName returns the customer's full name, falling back to the email.
func (c *Customer) DisplayName() string {
	if c == nil {
		return ""
	}
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name != "" {
		return name
	}
	return c.Email
}
