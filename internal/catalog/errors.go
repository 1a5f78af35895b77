package catalog

import "errors"

// Sentinel errors for catalog I/O. Load and Save wrap these so callers can
// classify failures with errors.Is without parsing messages.
var (
	// ErrNotFound indicates the catalog file does not exist.
	ErrNotFound = errors.New("catalog: file not found")

	// ErrInvalidJSON indicates the file exists but is not valid JSON.
	ErrInvalidJSON = errors.New("catalog: invalid JSON")

	// ErrMissingStrings indicates the document lacks the required top-level
	// "strings" collection.
	ErrMissingStrings = errors.New(`catalog: missing top-level "strings" object`)

	// ErrSave indicates serialization or write-back failed. The destination
	// file is left untouched when this is returned.
	ErrSave = errors.New("catalog: save failed")
)
