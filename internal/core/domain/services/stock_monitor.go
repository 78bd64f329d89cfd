package services

import "sellerdesk/internal/core/domain/model/product"

// DefaultLowStockLimit is the number of products shown in the low stock list.
const DefaultLowStockLimit = 5

// StockMonitor selects products whose stock is at or below a threshold.
type StockMonitor struct {
	threshold int
	limit     int
}

// NewStockMonitor creates a StockMonitor. A negative threshold or a
// non-positive limit falls back to the defaults.
func NewStockMonitor(threshold, limit int) StockMonitor {
	if threshold < 0 {
		threshold = product.DefaultLowStockThreshold
	}
	if limit <= 0 {
		limit = DefaultLowStockLimit
	}
	return StockMonitor{threshold: threshold, limit: limit}
}

func (m StockMonitor) Threshold() int {
	return m.threshold
}

// LowStock returns the first products, in catalog order, that are running low.
func (m StockMonitor) LowStock(products []product.Product) []product.Product {
	low := make([]product.Product, 0, m.limit)
	for _, p := range products {
		if len(low) == m.limit {
			break
		}
		if p.IsLowStock(m.threshold) {
			low = append(low, p)
		}
	}
	return low
}
