package commands

import (
	"errors"
	"strings"

	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// CreateProductCommand adds a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	draft product.Draft

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(draft product.Draft) (CreateProductCommand, error) {
	if err := draft.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{draft: draft, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Draft() product.Draft {
	return c.draft
}

// UpdateProductCommand replaces the editable fields of a product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID string
	draft     product.Draft

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID string, draft product.Draft) (UpdateProductCommand, error) {
	productID, idErr := requireProductID(productID)
	if err := errors.Join(idErr, draft.Validate()); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{productID: productID, draft: draft, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() string {
	return c.productID
}

func (c UpdateProductCommand) Draft() product.Draft {
	return c.draft
}

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID string) (DeleteProductCommand, error) {
	productID, err := requireProductID(productID)
	if err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() string {
	return c.productID
}

func requireProductID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errs.NewValueIsRequiredError("productId")
	}
	return id, nil
}
