// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every failed cookbook operation carries one of the ErrorCode constants so
// callers can distinguish, for example, an unknown entry from a type
// mismatch without parsing message text.
//
// Example usage:
//
//	err := errors.Newf(
//	    errors.ErrCodeMissingDependency,
//	    "required item %q is not in the cookbook", item.Name,
//	)
//	if errors.HasCode(err, errors.ErrCodeMissingDependency) {
//	    // fail the whole query, no partial result
//	}
package errors
