package nominatim

import "errors"

var (
	// ErrNoResult is returned when the upstream has no address for the coordinates.
	ErrNoResult = errors.New("nominatim: no result")

	// ErrInternal is returned when the request cannot be built or sent.
	ErrInternal = errors.New("nominatim client: internal error")

	// ErrInvalidResponse is returned on a non-200 status or an undecodable body.
	ErrInvalidResponse = errors.New("nominatim client: invalid response")
)
