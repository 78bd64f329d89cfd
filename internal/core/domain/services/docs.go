// Package services provides domain services that derive read models spanning
// many orders or products in the seller console.
//
// The package includes:
//   - OrderStatistics: revenue, customer count and recent orders computed from
//     the cached order list
//   - StockMonitor: selection of products that are running low
//
// The services are stateless; every view is recomputed from the input slice and
// never persisted.
package services
