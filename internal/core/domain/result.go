package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// FormatKind discriminates which location kind and rendering rule apply to
// a result set.
type FormatKind string

const (
	FormatText FormatKind = "text"
	FormatPDF  FormatKind = "pdf"
	FormatODT  FormatKind = "odt"
)

// Location pinpoints a match within its source file. Exactly one concrete
// kind exists per format: lines for plain text, pages for PDF, section
// paths for OpenDocument Text.
type Location interface {
	isLocation()
}

// LineLocation is a 0-indexed line number in a plain text file.
type LineLocation int

// PageLocation is a 1-indexed page number in a PDF.
type PageLocation int

// SectionLocation is the heading ancestry from the document root down to
// the match position in an ODT document.
type SectionLocation []string

func (LineLocation) isLocation()    {}
func (PageLocation) isLocation()    {}
func (SectionLocation) isLocation() {}

// NewSectionLocation snapshots the traversal path. The copy matters: the
// extractor mutates its stack in place while it walks the tree, and a
// result holding a live reference would change after emission.
func NewSectionLocation(path []string) SectionLocation {
	snapshot := make(SectionLocation, len(path))
	copy(snapshot, path)
	return snapshot
}

// SearchResult is one located match.
type SearchResult struct {
	// Filepath identifies the source file.
	Filepath string

	// Text is the matched line or fragment. Empty for ODT heading-only
	// matches, where the section path itself carries the match.
	Text string

	// Location is the line, page or section path of the match.
	Location Location
}

// MarshalJSON encodes the location as its discriminated field so JSON
// consumers see exactly one of line, page or section.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	out := struct {
		Filepath string   `json:"filepath"`
		Text     string   `json:"text,omitempty"`
		Line     *int     `json:"line,omitempty"`
		Page     *int     `json:"page,omitempty"`
		Section  []string `json:"section,omitempty"`
	}{Filepath: r.Filepath, Text: r.Text}

	switch loc := r.Location.(type) {
	case LineLocation:
		n := int(loc)
		out.Line = &n
	case PageLocation:
		n := int(loc)
		out.Page = &n
	case SectionLocation:
		out.Section = loc
	}
	return json.Marshal(out)
}

// SearchResultSet aggregates every match found in one file, in discovery
// order. Immutable after creation; ownership passes to the coordinator
// exactly once via the reply channel.
type SearchResultSet struct {
	// ID uniquely identifies this set in logs and JSON output.
	ID string `json:"id"`

	// Path is the searched file.
	Path string `json:"path"`

	// Term is the literal pattern this set was matched against, carried
	// per set so rendering is self-contained.
	Term string `json:"term"`

	// Format selects the location kind and rendering rule.
	Format FormatKind `json:"format"`

	// Results holds at least one match.
	Results []SearchResult `json:"results"`
}

// NewResultSet builds a result set for one file. Returns nil when results
// is empty: "no match" is always represented by absence, never by an empty
// set, so presenters never see a set with nothing to render.
func NewResultSet(path, term string, format FormatKind, results []SearchResult) *SearchResultSet {
	if len(results) == 0 {
		return nil
	}
	return &SearchResultSet{
		ID:      uuid.New().String(),
		Path:    path,
		Term:    term,
		Format:  format,
		Results: results,
	}
}
