package services

import (
	"strings"

	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
)

// Ensure ExtractorRegistry implements the interface.
var _ driven.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry maps MIME types to extractors. Entries ending in "/*"
// claim a whole top-level type (the plain text extractor registers
// "text/*"). Exact entries win over wildcards.
type ExtractorRegistry struct {
	exact    map[string]driven.Extractor
	wildcard map[string]driven.Extractor
}

// NewExtractorRegistry indexes the given extractors by their supported
// MIME types. Later registrations overwrite earlier ones for the same type.
func NewExtractorRegistry(extractors ...driven.Extractor) *ExtractorRegistry {
	r := &ExtractorRegistry{
		exact:    make(map[string]driven.Extractor),
		wildcard: make(map[string]driven.Extractor),
	}
	for _, ex := range extractors {
		for _, mt := range ex.SupportedMIMETypes() {
			if top, ok := strings.CutSuffix(mt, "/*"); ok {
				r.wildcard[top] = ex
			} else {
				r.exact[mt] = ex
			}
		}
	}
	return r
}

// ForMIMEType returns the extractor for mimeType, or nil when no extractor
// claims it.
func (r *ExtractorRegistry) ForMIMEType(mimeType string) driven.Extractor {
	// Classifiers strip parameters, but tolerate them anyway.
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	if ex, ok := r.exact[mimeType]; ok {
		return ex
	}
	if top, _, ok := strings.Cut(mimeType, "/"); ok {
		if ex, ok := r.wildcard[top]; ok {
			return ex
		}
	}
	return nil
}
