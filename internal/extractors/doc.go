// Package extractors groups the format-specific search strategies.
// Each subpackage implements driven.Extractor for one document family:
//
//   - plaintext: line-oriented search with per-file encoding detection
//   - pdf: page-oriented search through the external pdftotext converter
//   - odt: section-oriented search over the content.xml element tree
//
// Extractors are selected by MIME type through the services registry.
package extractors
