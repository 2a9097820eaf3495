package srs

import "errors"

var (
	ErrInvalidRating = errors.New("rating must be between 0 and 3")
	ErrInvalidStatus = errors.New("invalid review status")
	ErrInvalidPolicy = errors.New("invalid scheduling policy")
)
