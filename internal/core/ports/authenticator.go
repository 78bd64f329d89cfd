package ports

import (
	"context"

	"sellerdesk/internal/core/domain/model/session"
)

// Credentials are the sign-in inputs forwarded to the remote API.
type Credentials struct {
	Email    string
	Password string
}

// Registration creates a new remote account.
type Registration struct {
	Name     string
	Email    string
	Password string
	Address  session.Address
}

// Authenticator signs operators in and out of the remote API.
type Authenticator interface {
	// Login returns the upstream bearer token and the account behind it.
	Login(ctx context.Context, credentials Credentials) (token string, operator session.Operator, err error)

	// Register creates an account. No token is issued.
	Register(ctx context.Context, registration Registration) (session.Operator, error)

	// Logout invalidates the upstream token carried by ctx.
	Logout(ctx context.Context) error
}
