package schema

import (
	"time"
)

const AccountCollection = "users"

const (
	ROLE_DONOR     = "donor"
	ROLE_ORGANIZER = "organizer"
	ROLE_HOSPITAL  = "hospital"
	ROLE_ADMIN     = "admin"
)

// Account is the public profile of a user or organization. Only the
// fields a counterparty may see are modeled; credential data lives in
// the external auth service.
type Account struct {
	AccountNumber string    `json:"account_number" bson:"account_number"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	Role          string    `json:"role" bson:"role"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// PlaceholderAccount stands in for an organization whose profile lookup
// failed. Rendering a match batch must not fail because one profile is
// missing.
func PlaceholderAccount(accountNumber string) *Account {
	return &Account{
		AccountNumber: accountNumber,
		Name:          "Verified Provider",
		Email:         "contact via request",
	}
}
