package services

import (
	"sort"

	"sellerdesk/internal/core/domain/model/kernel"
	"sellerdesk/internal/core/domain/model/order"
)

// DefaultRecentOrdersLimit is the number of orders shown in the recent list.
const DefaultRecentOrdersLimit = 10

// OrderStatistics derives dashboard figures from a list of orders.
//
// Business rules:
//   - Revenue counts only orders whose status is exactly Delivered
//   - Customers are counted by display name; orders without a name share the
//     single "Guest" bucket, so distinct anonymous customers count once
//   - Recent orders are sorted by creation time, newest first
//
// Example usage:
//
//	stats := services.NewOrderStatistics(10)
//	revenue := stats.TotalRevenue(orders)
//	recent := stats.RecentOrders(orders)
type OrderStatistics struct {
	recentLimit int
}

// NewOrderStatistics creates an OrderStatistics that keeps recentLimit recent
// orders. A non-positive limit falls back to DefaultRecentOrdersLimit.
func NewOrderStatistics(recentLimit int) OrderStatistics {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentOrdersLimit
	}
	return OrderStatistics{recentLimit: recentLimit}
}

// TotalRevenue sums the totals of delivered orders.
func (s OrderStatistics) TotalRevenue(orders []order.Order) kernel.Money {
	revenue := kernel.ZeroMoney()
	for _, o := range orders {
		if o.Status() == order.Delivered {
			revenue = revenue.Add(o.Total())
		}
	}
	return revenue
}

// UniqueCustomers counts distinct customer display names.
func (s OrderStatistics) UniqueCustomers(orders []order.Order) int {
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		seen[o.CustomerName()] = struct{}{}
	}
	return len(seen)
}

// RecentOrders returns at most the configured number of orders, newest first.
// Orders with equal timestamps keep their list order. The input is not modified.
func (s OrderStatistics) RecentOrders(orders []order.Order) []order.Order {
	sorted := make([]order.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt().After(sorted[j].CreatedAt())
	})

	if len(sorted) > s.recentLimit {
		sorted = sorted[:s.recentLimit]
	}
	return sorted
}

// CountByStatus groups orders by displayed status.
func (s OrderStatistics) CountByStatus(orders []order.Order) map[order.Status]int {
	counts := make(map[order.Status]int, 4)
	for _, o := range orders {
		counts[o.Status().Display()]++
	}
	return counts
}
