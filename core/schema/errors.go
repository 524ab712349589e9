package schema

import "errors"

var (
	// ErrSchemaLoad reports an unreadable or unparseable schema file.
	ErrSchemaLoad = errors.New("arachne/schema: cannot load schema")
	// ErrInvalidSchema reports an internally inconsistent schema document.
	ErrInvalidSchema = errors.New("arachne/schema: invalid schema")
)

// IsSchemaLoadErr reports whether err stems from reading or parsing a
// schema file.
func IsSchemaLoadErr(err error) bool { return errors.Is(err, ErrSchemaLoad) }

// IsInvalidSchemaErr reports whether err stems from schema validation.
func IsInvalidSchemaErr(err error) bool { return errors.Is(err, ErrInvalidSchema) }
