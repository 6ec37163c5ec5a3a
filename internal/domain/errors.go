package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexNotFound signals an operation on an index that does not exist.
	ErrIndexNotFound = errors.New("index not found")
	// ErrInvalidRequest signals a request the store rejected as malformed:
	// bad index name or settings, bad document, bad query parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrStoreUnavailable signals that the store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IndexNotFoundError wraps ErrIndexNotFound with the index name.
type IndexNotFoundError struct {
	Index string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("Index '%s' does not exist", e.Index)
}

func (e *IndexNotFoundError) Unwrap() error { return ErrIndexNotFound }

// NewIndexNotFound creates an index-not-found error for name.
func NewIndexNotFound(name string) error {
	return &IndexNotFoundError{Index: name}
}

// InvalidRequestError wraps ErrInvalidRequest with a caller-facing message
// and the underlying cause.
type InvalidRequestError struct {
	Message string
	Err     error
}

func (e *InvalidRequestError) Error() string { return e.Message }

func (e *InvalidRequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidRequest}
	}
	return []error{ErrInvalidRequest, e.Err}
}

// NewInvalidRequest creates an invalid-request error. cause may be nil.
func NewInvalidRequest(message string, cause error) error {
	return &InvalidRequestError{Message: message, Err: cause}
}

// PrefixInvalid prepends prefix to the message of an invalid-request error.
// Any other error is returned unchanged.
func PrefixInvalid(err error, prefix string) error {
	var ire *InvalidRequestError
	if !errors.As(err, &ire) {
		return err
	}
	return &InvalidRequestError{Message: prefix + ire.Message, Err: ire.Err}
}
