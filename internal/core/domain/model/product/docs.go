// Package product models catalog products managed through the console.
//
// Products live in the remote commerce API. The console restores them from
// API responses with RestoreProduct and validates operator input with NewDraft
// before it is sent upstream. Category identifiers are resolved to labels by a
// CategoryDirectory.
package product
