package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/alumnifc/clubledger/internal/finance"
)

// connectError maps an engine error onto a Connect code.
func connectError(err error) error {
	switch {
	case errors.Is(err, finance.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, finance.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, finance.ErrImmutableField), errors.Is(err, finance.ErrDerivedEntry):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
