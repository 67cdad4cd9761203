package driven

// TypeClassifier identifies what kind of file a path points at. The engine
// treats the returned strings as authoritative: what the classifier says a
// file is, it is.
type TypeClassifier interface {
	// MIMEType returns the MIME type of the file at path, without
	// parameters (no "; charset=...").
	MIMEType(path string) (string, error)

	// Encoding returns the IANA character set name for the text file at
	// path. Only meaningful for files whose MIME type is text/*.
	Encoding(path string) (string, error)
}
