// Package domain defines the core entities for supergrep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - SearchResult: One located match (line, page or section path)
//   - SearchResultSet: All matches found in one file
//   - FileOutcome: The tri-state per-file result (matched / no match / failed)
//   - FormatKind: The discriminator selecting location kind and rendering
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
package domain
