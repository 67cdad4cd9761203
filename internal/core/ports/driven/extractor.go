package driven

import (
	"context"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
)

// Extractor searches one file for a literal term, producing locatable
// results. Each extractor handles specific MIME types (plain text, PDF,
// ODT).
//
// A nil set with a nil error means the file was searched and nothing
// matched. An error means extraction failed for that file; the engine
// isolates the failure and keeps the run going.
type Extractor interface {
	// FormatKind identifies the location kind this extractor produces.
	FormatKind() domain.FormatKind

	// SupportedMIMETypes returns the MIME types this extractor handles.
	// An entry ending in "/*" claims a whole top-level type.
	SupportedMIMETypes() []string

	// Extract searches the file at path for term.
	Extract(ctx context.Context, term, path string) (*domain.SearchResultSet, error)
}

// ExtractorRegistry selects the extractor for a MIME type.
type ExtractorRegistry interface {
	// ForMIMEType returns the extractor for mimeType, or nil when the type
	// is unrecognised. Unrecognised files are skipped, not failed.
	ForMIMEType(mimeType string) Extractor
}
