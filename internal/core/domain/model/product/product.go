package product

import (
	"errors"
	"strings"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/pkg/errs"
	"sellerdesk/internal/pkg/guard"
)

// DefaultLowStockThreshold is the stock level at or below which a product is
// reported as running low.
const DefaultLowStockThreshold = 5

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrBrandIsRequired = errs.NewValueIsRequiredError("brand")
	// ErrProductIsNotConstructed is returned when a Product was not built by RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct constructor")
)

// Attributes are the editable fields of a product.
type Attributes struct {
	Name          string
	Description   string
	Brand         string
	Price         kernel.Money
	DiscountPrice *kernel.Money
	Category      Category
	Stock         int
	Active        bool
}

// Product is a catalog product as returned by the remote API.
type Product struct { //nolint:recvcheck //using for validation
	id     string
	attrs  Attributes
	images []string

	guard guard.ConstructorGuard
}

// RestoreProduct rebuilds a product from the remote API. Only the identifier
// and money values are checked: the console shows whatever the catalog holds.
func RestoreProduct(id string, attrs Attributes, images []string) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, errs.NewValueIsRequiredError("product id")
	}
	if err := attrs.validateMoney(); err != nil {
		return Product{}, err
	}
	if attrs.Stock < 0 {
		attrs.Stock = 0
	}

	return Product{
		id:     id,
		attrs:  attrs,
		images: append([]string(nil), images...),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() string {
	return p.id
}

func (p Product) Name() string {
	return p.attrs.Name
}

func (p Product) Description() string {
	return p.attrs.Description
}

func (p Product) Brand() string {
	return p.attrs.Brand
}

func (p Product) Price() kernel.Money {
	return p.attrs.Price
}

// DiscountPrice returns the discount price and whether one is set.
func (p Product) DiscountPrice() (kernel.Money, bool) {
	if p.attrs.DiscountPrice == nil {
		return kernel.Money{}, false
	}
	return *p.attrs.DiscountPrice, true
}

func (p Product) Category() Category {
	return p.attrs.Category
}

func (p Product) Stock() int {
	return p.attrs.Stock
}

func (p Product) IsActive() bool {
	return p.attrs.Active
}

func (p Product) Images() []string {
	return append([]string(nil), p.images...)
}

// IsLowStock reports whether stock is at or below threshold.
func (p Product) IsLowStock(threshold int) bool {
	return p.attrs.Stock <= threshold
}

func (a Attributes) validateMoney() error {
	if err := a.Price.Validate(); err != nil {
		return err
	}
	if a.DiscountPrice != nil {
		return a.DiscountPrice.Validate()
	}
	return nil
}
