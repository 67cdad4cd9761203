// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TypeClassifier: Identifies a file's MIME type and character encoding
//   - Extractor: Searches one file format for a literal term
//   - ExtractorRegistry: Selects the extractor for a MIME type
//   - Presenter: Renders per-file outcomes as they stream out of the engine
//
// # Supporting Interfaces
//
//   - CommandRunner: Executes external converters, injectable for tests
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
