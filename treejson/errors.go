package treejson

import "errors"

var (
	// ErrInvalidJSON signals input which is not well-formed JSON.
	ErrInvalidJSON = errors.New("treejson: invalid JSON")
	// ErrNoMapping signals JSON which is well-formed but not a tree mapping,
	// i.e. not an object of node records.
	ErrNoMapping = errors.New("treejson: not a tree mapping")
)
