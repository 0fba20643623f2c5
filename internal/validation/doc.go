// Package validation checks character data.
//
// The form validators return errors.FieldErrors keyed by field path, with
// ability scores addressed as "abilityScores.<ability>". They never mutate
// their input and always return the same errors for the same input.
//
// ValidateCharacter checks a complete record on the server and returns a
// list of lower-case details in a deterministic order.
package validation
