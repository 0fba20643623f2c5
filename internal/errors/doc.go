// Package errors provides the coded error type shared by every layer of rpg-charsheet.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form metadata.
// The code decides the HTTP status on the way out of the REST server and is recovered from
// the HTTP status on the way back into the character API client, so a conflict raised by a
// repository reaches the form wizard as the same ALREADY_EXISTS error.
//
// # Basic Usage
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid ability score: %d", score)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Validation
//
// Server side validation reports a list of lower-case details:
//
//	errors.InvalidArgument("validation failed").WithDetails(details)
//
// Form validation reports one message per field path:
//
//	fe := errors.NewFieldErrors()
//	fe.Add("abilityScores.strength", "Strength must be between 1 and 30")
//
// Dependency checks in constructors use the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound and AlreadyExists with the character ID in metadata
//   - Wrap driver errors with context
//
// Orchestrator layer:
//   - Validate records and return InvalidArgument with details
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Map codes to HTTP statuses with Code.HTTPStatus
//   - Log internal errors, never leak causes to the response body
package errors
