package tracker

import "errors"

var (
	ErrEmptyReference = errors.New("reference is empty")
	ErrNotFound       = errors.New("no application matches the reference")
)
