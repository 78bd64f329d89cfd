package commands

import (
	"errors"
	"net/mail"
	"strings"

	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

// MinPasswordLength is the shortest password accepted on registration.
const MinPasswordLength = 6

var ErrRegisterOperatorCommandIsNotConstructed = errors.New(
	"RegisterOperatorCommand must be created via NewRegisterOperatorCommand constructor",
)

// RegisterOperatorCommand creates a remote account.
type RegisterOperatorCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	address  session.Address

	guard guard.ConstructorGuard
}

// NewRegisterOperatorCommand requires a name, a well-formed email and a
// password of at least MinPasswordLength characters.
func NewRegisterOperatorCommand(name, email, password string, address session.Address) (RegisterOperatorCommand, error) {
	c := RegisterOperatorCommand{address: address, guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setName(name), c.setEmail(email), c.setPassword(password)); err != nil {
		return RegisterOperatorCommand{}, err
	}
	return c, nil
}

func (c RegisterOperatorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOperatorCommandIsNotConstructed)
}

func (c RegisterOperatorCommand) Name() string             { return c.name }
func (c RegisterOperatorCommand) Email() string            { return c.email }
func (c RegisterOperatorCommand) Password() string         { return c.password }
func (c RegisterOperatorCommand) Address() session.Address { return c.address }

func (c *RegisterOperatorCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterOperatorCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *RegisterOperatorCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, 128)
	}
	c.password = password
	return nil
}
