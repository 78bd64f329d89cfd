// Package ports defines the contracts between the console core and its
// adapters: the remote commerce API (orders, products, users) and the local
// database (sessions, transition journal).
package ports
