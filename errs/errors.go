// Package errs defines the static errors returned by fixstr packages.
package errs

import "errors"

var (
	// ErrInvalidDataSize is returned when encoded data does not match the
	// exact fixed size of the target variant.
	ErrInvalidDataSize = errors.New("invalid encoded data size")

	// ErrLengthOutOfRange is returned when a decoded length field exceeds
	// the capacity of the target variant.
	ErrLengthOutOfRange = errors.New("decoded length exceeds capacity")
)
