// Package kernel provides the shared value objects of the seller console domain.
//
// The package includes:
//   - UUID: identifier for console-owned records (sessions, journal entries)
//   - Money: a non-negative amount held in minor units (cents)
//
// Both types are immutable and their zero values fail validation, so every
// instance must come from a constructor.
package kernel
