// Package storeerr translates store driver errors into domain errors.
package storeerr

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/docgate/internal/db"
	"github.com/kailas-cloud/docgate/internal/domain"
)

// Translate maps a db error onto the domain taxonomy. index names the index
// the call was about, for not-found errors. Unclassified errors, including
// rejected credentials (db.ErrUnauthorized), pass through.
func Translate(err error, index string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, db.ErrTransport):
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	case errors.Is(err, db.ErrIndexNotFound):
		return domain.NewIndexNotFound(index)
	case errors.Is(err, db.ErrBadRequest), errors.Is(err, db.ErrIndexExists):
		return domain.NewInvalidRequest(reason(err), err)
	default:
		return err
	}
}

// reason returns the store's own explanation, without the op prefix.
func reason(err error) string {
	var re *db.ResponseError
	if errors.As(err, &re) {
		return re.Error()
	}
	return err.Error()
}
