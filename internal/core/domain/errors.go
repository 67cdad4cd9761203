package domain

import "errors"

// Domain errors represent search failures.
// These are distinct from infrastructure errors.
var (
	// ErrPDFToolNotFound indicates the external pdftotext utility is not
	// on PATH. A configuration error: surfaced before any search begins.
	ErrPDFToolNotFound = errors.New("pdftotext not found")

	// ErrUnsupportedEncoding indicates a text file's character encoding
	// has no registered decoder.
	ErrUnsupportedEncoding = errors.New("unsupported character encoding")

	// ErrNotRegularFile indicates a path is a directory or other
	// non-regular file that cannot be searched directly.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrMalformedDocument indicates a container or markup file could not
	// be parsed (corrupt zip archive, invalid XML).
	ErrMalformedDocument = errors.New("malformed document")
)
