package queries

import (
	"sellerdesk/internal/core/domain/model/product"
)

// ProductView is a product prepared for display.
type ProductView struct {
	ID            string
	Name          string
	Description   string
	Brand         string
	Price         float64
	DiscountPrice *float64
	CategoryID    string
	Category      string
	Images        []string
	Stock         int
	IsActive      bool
	LowStock      bool
}

func newProductView(p product.Product, categories product.CategoryDirectory, threshold int) ProductView {
	view := ProductView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Brand:       p.Brand(),
		Price:       p.Price().Float(),
		CategoryID:  p.Category().ID,
		Category:    categories.Label(p.Category()),
		Images:      p.Images(),
		Stock:       p.Stock(),
		IsActive:    p.IsActive(),
		LowStock:    p.IsLowStock(threshold),
	}
	if discount, ok := p.DiscountPrice(); ok {
		amount := discount.Float()
		view.DiscountPrice = &amount
	}
	return view
}
