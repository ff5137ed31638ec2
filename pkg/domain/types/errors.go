package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrInvalidInput  = goerr.New("invalid input")

	// ErrAuthRequired is returned when a write operation is attempted
	// without a write credential for the content store.
	ErrAuthRequired = goerr.New("write credential required")

	// ErrNotFound covers both a missing manifest and a missing asset.
	// The read path treats a missing manifest as an empty gallery.
	ErrNotFound = goerr.New("content not found")

	// ErrConflict is returned when the store rejects a write because the
	// attached version token (SHA) no longer matches the file.
	ErrConflict = goerr.New("content version conflict")

	ErrMalformedContent = goerr.New("malformed content")
)
