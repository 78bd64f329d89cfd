package queries

import (
	"context"
	"errors"
	"strings"

	"sellerdesk/internal/core/domain/model/product"
	"sellerdesk/internal/core/ports"
	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New("GetProductsQuery must be created via NewGetProductsQuery constructor")
	ErrGetProductQueryIsNotConstructed  = errors.New("GetProductQuery must be created via NewGetProductQuery constructor")
)

// GetProductsQuery lists the catalog.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductQuery fetches one product.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID string) (GetProductQuery, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("productId")
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() string {
	return q.productID
}

// ProductQueryHandler reads products from the remote catalog and labels their
// categories.
type ProductQueryHandler struct {
	catalog    ports.ProductCatalog
	categories product.CategoryDirectory
	threshold  int
}

func NewProductQueryHandler(
	catalog ports.ProductCatalog,
	categories product.CategoryDirectory,
	lowStockThreshold int,
) ProductQueryHandler {
	return ProductQueryHandler{catalog: catalog, categories: categories, threshold: lowStockThreshold}
}

func (h ProductQueryHandler) HandleList(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p, h.categories, h.threshold))
	}
	return views, nil
}

func (h ProductQueryHandler) HandleGet(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	p, err := h.catalog.Get(ctx, query.ProductID())
	if err != nil {
		return ProductView{}, err
	}
	return newProductView(p, h.categories, h.threshold), nil
}

// View labels a product returned by a write operation.
func (h ProductQueryHandler) View(p product.Product) ProductView {
	return newProductView(p, h.categories, h.threshold)
}
