package driving

import "context"

// Stats summarises one engine run.
type Stats struct {
	// Searched is the number of paths submitted.
	Searched int

	// Matched is the number of files with at least one result.
	Matched int

	// Failed is the number of files whose extraction failed.
	Failed int
}

// Searcher runs a literal-pattern search across a set of file paths.
type Searcher interface {
	// Run searches every path for term, streaming each file's outcome to
	// the presenter in path-submission order, and returns aggregate
	// counts once every worker has terminated.
	Run(ctx context.Context, term string, paths []string) Stats
}
