package ports

import (
	"context"

	"sellerdesk/internal/core/domain/model/product"
)

// ProductCatalog is the remote catalog of products.
type ProductCatalog interface {
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
	Create(ctx context.Context, draft product.Draft) (product.Product, error)
	// Update replaces the editable fields of product id. Images in the draft
	// are added to the product.
	Update(ctx context.Context, id string, draft product.Draft) (product.Product, error)
	Delete(ctx context.Context, id string) error
}
