package errs

import (
	"sort"
	"strings"
)

// ValidationError carries every rejected field of a payload with its reasons.
type ValidationError struct {
	fields map[string][]error
}

func (e *ValidationError) Error() string {
	fields := e.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields renders the reasons per field, suitable for a response body.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k, list := range e.fields {
		msgs := make([]string, len(list))
		for i, err := range list {
			msgs[i] = err.Error()
		}
		out[k] = msgs
	}
	return out
}

// Unwrap exposes the individual field errors and ErrDomainValidation.
func (e *ValidationError) Unwrap() []error {
	out := []error{ErrDomainValidation}
	for _, list := range e.fields {
		out = append(out, list...)
	}
	return out
}

// FieldErrors collects per-field failures while a payload is checked.
type FieldErrors struct {
	fields map[string][]error
}

func NewFieldErrors() *FieldErrors {
	return &FieldErrors{fields: map[string][]error{}}
}

// Add records err against field. A nil err is ignored so callers can pass
// the result of a value-object constructor straight through.
func (f *FieldErrors) Add(field string, err error) {
	if err == nil {
		return
	}
	f.fields[field] = append(f.fields[field], err)
}

func (f *FieldErrors) AddMessage(field, msg string) {
	f.Add(field, New(msg))
}

func (f *FieldErrors) Empty() bool {
	return len(f.fields) == 0
}

// Err returns nil when nothing was recorded, otherwise a *ValidationError.
func (f *FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}
	return &ValidationError{fields: f.fields}
}

// FieldError builds a single-field validation error.
func FieldError(field string, err error) error {
	fe := NewFieldErrors()
	fe.Add(field, err)
	return fe.Err()
}

// AsValidation extracts the field map from err if it carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if As(err, &ve) {
		return ve, true
	}
	return nil, false
}
