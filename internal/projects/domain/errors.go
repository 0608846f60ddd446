package domain

import "errors"

var (
	ErrNotFound         = errors.New("project not found")
	ErrMalformedStorage = errors.New("malformed project document")
	ErrInvalidBody      = errors.New("invalid request body")
)
