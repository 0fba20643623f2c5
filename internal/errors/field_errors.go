package errors

import "sort"

// FieldErrors maps a field path such as "abilityScores.strength" to a single
// message. The first message recorded for a path wins.
type FieldErrors map[string]string

// NewFieldErrors creates an empty set of field errors
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Add records message for field unless the field already has one
func (fe FieldErrors) Add(field, message string) {
	if _, ok := fe[field]; ok {
		return
	}
	fe[field] = message
}

// Has reports whether field has an error
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Remove clears the error for field
func (fe FieldErrors) Remove(field string) {
	delete(fe, field)
}

// Merge copies entries from other that are not already present
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, message := range other {
		fe.Add(field, message)
	}
}

// Clone returns an independent copy
func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// Fields returns the field paths in sorted order
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for k := range fe {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// ToError converts the field errors to an InvalidArgument error, or nil when empty
func (fe FieldErrors) ToError() *Error {
	if len(fe) == 0 {
		return nil
	}
	return InvalidArgument("validation failed").WithMeta("field_errors", map[string]string(fe.Clone()))
}
