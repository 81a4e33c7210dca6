package input

import "errors"

// Sentinel errors for snapshot loading failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrBadTriState indicates a tri-state field held a value that is
	// neither a boolean, a recognized token, nor null.
	ErrBadTriState = errors.New("input: invalid tri-state value")

	// ErrBadSnapshot indicates the snapshot file could not be parsed.
	ErrBadSnapshot = errors.New("input: invalid snapshot")

	// ErrUnknownFormat indicates the snapshot file extension is not
	// .yaml, .yml, or .json.
	ErrUnknownFormat = errors.New("input: unknown snapshot format")
)
