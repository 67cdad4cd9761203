package domain

// OutcomeKind tags the tri-state result of searching one file. "No match"
// and "could not be searched" are distinct states: conflating them hides
// extraction failures behind silence.
type OutcomeKind int

const (
	// OutcomeMatched means the file produced at least one result.
	OutcomeMatched OutcomeKind = iota

	// OutcomeNoMatch means the file was searched, or skipped as an
	// unrecognised type, and produced nothing. Not an error.
	OutcomeNoMatch

	// OutcomeFailed means extraction failed for this file. The failure is
	// confined to the file; the run continues.
	OutcomeFailed
)

// FileOutcome is what a worker reports back for one file. Set is populated
// for OutcomeMatched, Err for OutcomeFailed.
type FileOutcome struct {
	Path string
	Kind OutcomeKind
	Set  *SearchResultSet
	Err  error
}

// Matched wraps a non-nil result set.
func Matched(set *SearchResultSet) FileOutcome {
	return FileOutcome{Path: set.Path, Kind: OutcomeMatched, Set: set}
}

// NoMatch reports a searched file with nothing to show.
func NoMatch(path string) FileOutcome {
	return FileOutcome{Path: path, Kind: OutcomeNoMatch}
}

// Failed reports a per-file extraction failure.
func Failed(path string, err error) FileOutcome {
	return FileOutcome{Path: path, Kind: OutcomeFailed, Err: err}
}
