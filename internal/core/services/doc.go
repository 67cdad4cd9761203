// Package services implements the driving port interfaces.
// Services contain the core business logic: the parallel search engine
// and the extractor registry it dispatches through.
package services
