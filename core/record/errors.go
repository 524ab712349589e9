package record

import "errors"

var (
	// ErrNotFound reports a lookup that matched no document.
	ErrNotFound = errors.New("arachne/record: document not found")
	// ErrMissingKey reports an operation requiring a stored document being
	// called on an unsaved record.
	ErrMissingKey = errors.New("arachne/record: record has no key")
	// ErrValidation reports a payload rejected by its own Validate rules.
	ErrValidation = errors.New("arachne/record: validation failed")
)

// IsNotFoundErr reports whether err stems from a missing document.
func IsNotFoundErr(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidationErr reports whether err stems from record validation.
func IsValidationErr(err error) bool { return errors.Is(err, ErrValidation) }
