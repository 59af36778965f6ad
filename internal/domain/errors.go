package domain

import "errors"

var (
	// ErrInvalidData rejects a submission with an empty or missing body.
	ErrInvalidData = errors.New("invalid data")
	// ErrInvalidLocation rejects a submission whose location is not in the
	// configured allow-list.
	ErrInvalidLocation = errors.New("invalid location")
)
