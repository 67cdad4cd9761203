package driven

import "github.com/supergrep-dev/supergrep/internal/core/domain"

// Presenter renders per-file outcomes as the engine streams them out, in
// path-submission order.
type Presenter interface {
	// Present renders one file's result set.
	Present(set *domain.SearchResultSet)

	// PresentError reports a per-file extraction failure. It never aborts
	// the run; other files' results still render.
	PresentError(path string, err error)
}
