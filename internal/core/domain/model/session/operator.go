package session

import (
	"errors"
	"strings"
)

// AdminRole is the only role allowed to use the console.
const AdminRole = "admin"

// ErrNotAdmin is returned when a non-admin account signs in.
var ErrNotAdmin = errors.New("only admin accounts can access the seller console")

// Address is the postal address supplied on registration.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Operator is the remote user behind a session.
type Operator struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func (o Operator) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(o.Role), AdminRole)
}

// RequireAdmin returns ErrNotAdmin unless o has the admin role.
func (o Operator) RequireAdmin() error {
	if !o.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}
