// Package queries contains read-only operations of the seller console.
// Order views are served from the workflow engine cache, products from the
// remote catalog, and the transition journal straight from the database.
package queries
