package finance

import (
	"errors"
	"fmt"

	"github.com/alumnifc/clubledger/internal/storage"
)

// Every error returned by the Engine wraps exactly one of these.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = storage.ErrNotFound
	ErrInvariantViolation = errors.New("invariant violation")
	ErrImmutableField     = errors.New("immutable field")
	ErrDerivedEntry       = errors.New("entry is owned by another record")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// outcome is the metrics label for an operation's result.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrImmutableField):
		return "immutable_field"
	case errors.Is(err, ErrDerivedEntry):
		return "derived_entry"
	case errors.Is(err, ErrInvariantViolation):
		return "invariant_violation"
	}
	return "error"
}
