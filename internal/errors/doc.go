// Package errors provides the structured error type used across pokerole-api.
//
// Errors carry a Code, a user-facing Message, an optional Cause and a Meta map:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID).
//	    WithMeta("user_id", userID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load roster")
//	}
//
// Rule rejections (move limits, roll step violations) use FailedPrecondition
// and tag the error with a reason so callers can tell them apart:
//
//	err := errors.FailedPrecondition("move limit reached").
//	    WithReason("MOVE_LIMIT_REACHED")
//	errors.HasReason(err, "MOVE_LIMIT_REACHED") // true
//
// Two *Error values match under errors.Is when their codes match and, if the
// target carries a reason, their reasons match too.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("species", input.Species, vb)
//	errors.ValidateRange("happiness", input.Happiness, 0, 5, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing keys
//   - Return DataLoss for documents that no longer decode
//   - Wrap Redis errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return FailedPrecondition for rule rejections
//
// CLI layer:
//   - Print the error and any GetValidationErrors(err) fields
//   - Exit with GetCode(err).ExitCode()
//
// Errors that never passed through this package are classified by GetCode:
// context.Canceled becomes Canceled, context.DeadlineExceeded becomes
// Unavailable and everything else is Internal.
package errors
