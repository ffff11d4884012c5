package gls254

import (
	"github.com/pkg/errors"
)

var (
	// ErrDecode is returned when bytes do not encode a valid field element,
	// scalar or point of the prime-order group.
	ErrDecode = errors.New("gls254: invalid encoding")

	// ErrUndefined is returned for mathematically undefined operations, such
	// as inverting zero or deriving a shared secret from the neutral element.
	ErrUndefined = errors.New("gls254: undefined operation")

	// ErrInvalidVariant is returned when a variant name is not recognised.
	ErrInvalidVariant = errors.New("gls254: invalid variant")
)

func wrapDecode(reason string) error {
	return errors.Wrap(ErrDecode, reason)
}

func errInvalidLength(what string, want, got int) error {
	return errors.Wrapf(ErrDecode, "%s must be %d bytes, got %d", what, want, got)
}
