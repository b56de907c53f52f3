// Package errs provides the error types shared by the shift service.
//
// Each type pairs a struct carrying the details (parameter name, offending
// value, optional cause) with a sentinel it unwraps to, so callers classify
// failures with errors.Is and still get a descriptive message:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a lookup found nothing
//   - ObjectAlreadyExistsError: a key is already taken
//
// Every type has a constructor with and without a cause.
package errs
