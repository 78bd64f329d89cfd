// Package errs provides standardized error types for the seller console.
// Every type follows the same shape: a sentinel error, a struct carrying the
// details, constructors with and without a cause, and an Unwrap method that
// returns the sentinel so callers can classify failures with errors.Is.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a rule
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a referenced object does not exist
package errs
