package arango

import (
	"errors"
	"fmt"

	driver "github.com/arangodb/go-driver"

	"github.com/asaidimu/go-arachne/core/record"
)

var (
	// ErrConfig reports incomplete connection settings.
	ErrConfig = errors.New("arachne/arango: invalid configuration")
	// ErrRequest reports a failed database operation.
	ErrRequest = errors.New("arachne/arango: request failed")
	// ErrConflict reports a write rejected by a unique constraint or a
	// revision mismatch.
	ErrConflict = errors.New("arachne/arango: conflict")
)

// ArangoDB error numbers the adapter maps to sentinel errors.
const (
	errNumConflict           = 1200
	errNumDocumentNotFound   = 1202
	errNumCollectionNotFound = 1203
	errNumUniqueViolated     = 1210
)

// mapError translates driver errors into the sentinel errors the record
// layer matches on. The original error stays in the message for diagnosis.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case driver.IsNotFound(err) ||
		driver.IsArangoErrorWithErrorNum(err, errNumDocumentNotFound, errNumCollectionNotFound):
		return fmt.Errorf("%w: %v", record.ErrNotFound, err)
	case driver.IsConflict(err) ||
		driver.IsArangoErrorWithErrorNum(err, errNumConflict, errNumUniqueViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrRequest, err)
}

// IsConflictErr reports whether err stems from a constraint or revision
// conflict.
func IsConflictErr(err error) bool { return errors.Is(err, ErrConflict) }
