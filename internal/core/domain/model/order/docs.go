// Package order models customer orders as seen by the seller console.
//
// Orders are created by the remote commerce API; the console only reads them
// and moves their fulfillment status forward:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//
// Delivered is final. Status values outside this set are parsed as Unknown,
// displayed as Pending, and advanced according to an UnrecognizedStatusPolicy.
// Whether a transition also marks the order paid is decided by a PaidFlagPolicy.
package order
