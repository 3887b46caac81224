package inventory

import (
	"errors"
	"fmt"
)

// Sentinel errors, checked with errors.Is.
var (
	// ErrAssetNotFound indicates the referenced asset does not exist
	// (possibly deleted from another session; the caller should refresh).
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetNotDeleted indicates a purge was attempted on an asset that
	// has not been soft-deleted first.
	ErrAssetNotDeleted = errors.New("asset is not in the trash")
)

// ValidationError reports a bad input field. Recoverable: the user corrects
// the field and resubmits.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }

// PersistenceError wraps a store failure. Surfaced to the caller verbatim;
// no automatic retry, so an ambiguous network failure never turns into a
// duplicate write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if errors.Is(err, ErrAssetNotFound) {
		return ErrAssetNotFound
	}
	return &PersistenceError{Op: op, Err: err}
}
