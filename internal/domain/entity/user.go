// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Every user is a customer; IsAdmin grants console access.
type User struct {
	ID           uuid.UUID // Global unique identifier.
	Email        string    // Primary contact email, used as the login identifier.
	Name         string    // Display name.
	ReferralCode string    // Code other shoppers enter at signup to be referred by this user.
	IsAdmin      bool      // Grants the admin role.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles derives the role set carried in access tokens.
func (u *User) Roles() Roles {
	roles := Roles{RoleCustomer}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
