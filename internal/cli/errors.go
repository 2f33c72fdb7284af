package cli

import "errors"

// Sentinel errors returned by the commands. Call sites wrap them with
// context; match with errors.Is.
var (
	// ErrInvalidJSON is returned when the input document is not valid JSON.
	ErrInvalidJSON = errors.New("cli: input is not valid json")

	// ErrPathNotFound is returned when --path selects nothing.
	ErrPathNotFound = errors.New("cli: path not found in input")

	// ErrNotArray is returned by sequence commands on non-array input.
	ErrNotArray = errors.New("cli: input must be a json array")

	// ErrNotObject is returned by map commands on non-object input.
	ErrNotObject = errors.New("cli: input must be a json object")

	// ErrUnknownFormat is returned for an output format other than json or table.
	ErrUnknownFormat = errors.New("cli: unknown output format")

	// ErrInvalidCount is returned when a count argument is not an integer.
	ErrInvalidCount = errors.New("cli: count must be an integer")
)
