// Package kernel provides the value objects shared by every laundry aggregate.
//
// The package includes:
//   - ID: the synthetic integer identity assigned by the store
//   - Name: a display name with at least three non-whitespace characters
//   - Phone: a phone number whose digits count lies between 9 and 12
//   - Amount: a strictly positive decimal used for prices and weights
//   - Date: a calendar date without time of day, used for pickups and reports
//
// All constructors validate their input and return errors from the errs package,
// so callers can tell invalid input apart from other failures. Zero values are
// invalid and fail Validate.
package kernel
