// Package errors provides a comprehensive error handling solution for the sr4-ledger project.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Game-rule rejection helpers (resource shortfalls, mode gating)
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid attribute code: %s", code)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID).
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := repo.Get(id); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Changing error semantics:
//
//	if err := db.Query(); err != nil {
//	    if isNotFound(err) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "character not found")
//	    }
//	    return errors.Wrap(err, "database error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("rating", input.Rating, 0, 6, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Game-Rule Rejections
//
// Affordability and legality failures carry the shortfall in metadata and a
// message the UI can show as-is:
//
//	if char.Karma < cost {
//	    return errors.Insufficient("karma", cost, char.Karma)
//	}
//	if char.Status != sr4.StatusCareer {
//	    return errors.CareerOnly("improve skill")
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check mode and affordability before mutating anything
//   - Wrap repository errors with business context
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists (duplicate name)
//   - PermissionDenied: Insufficient permissions
//   - Internal: Internal error
//   - Unavailable: Service temporarily unavailable
//   - Unauthenticated: Authentication required
//   - ResourceExhausted: Not enough karma/nuyen/essence/build points
//   - FailedPrecondition: Wrong advancement mode for the operation
//   - Aborted: Operation aborted
//   - OutOfRange: Rating, slot, or capacity limit exceeded
//   - Unimplemented: Feature not implemented
//   - DataLoss: Unrecoverable data loss
//   - Canceled: Operation canceled
//   - DeadlineExceeded: Operation timeout
package errors
