// Package workflow implements the order status workflow engine.
//
// An Engine caches the operator's orders, advances one order at a time along
// Pending -> Processing -> Shipped -> Delivered, and keeps track of which orders
// have a status update in flight and of the last error that occurred. The
// remote order store is the only system of record: the cache changes only after
// the store confirms a fetch or an update.
//
// An Engine is safe for concurrent use. Its lock is never held while a request
// to the store is outstanding.
package workflow
