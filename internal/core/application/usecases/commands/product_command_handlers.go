package commands

import (
	"context"
	"log/slog"

	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/ports"
)

// ProductCommandHandler forwards catalog changes to the remote API.
type ProductCommandHandler struct {
	catalog ports.ProductCatalog
	logger  *slog.Logger
}

func NewProductCommandHandler(catalog ports.ProductCatalog, logger *slog.Logger) ProductCommandHandler {
	return ProductCommandHandler{catalog: catalog, logger: logger.With("component", "product_commands")}
}

func (h ProductCommandHandler) HandleCreate(ctx context.Context, cmd CreateProductCommand) (product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return product.Product{}, err
	}

	p, err := h.catalog.Create(ctx, cmd.Draft())
	if err != nil {
		return product.Product{}, err
	}

	h.logger.InfoContext(ctx, "Product created", "product_id", p.ID())
	return p, nil
}

func (h ProductCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateProductCommand) (product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return product.Product{}, err
	}

	p, err := h.catalog.Update(ctx, cmd.ProductID(), cmd.Draft())
	if err != nil {
		return product.Product{}, err
	}

	h.logger.InfoContext(ctx, "Product updated", "product_id", p.ID())
	return p, nil
}

func (h ProductCommandHandler) HandleDelete(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.catalog.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Product deleted", "product_id", cmd.ProductID())
	return nil
}
