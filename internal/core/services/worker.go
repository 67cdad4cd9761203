package services

import (
	"context"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
	"github.com/supergrep-dev/supergrep/internal/logger"
)

// searchWorker is one pool participant. Workers share nothing but the job
// queue; each file is processed in isolation, which is why the engine
// needs no locks beyond the channels themselves.
type searchWorker struct {
	id         int
	term       string
	classifier driven.TypeClassifier
	registry   driven.ExtractorRegistry
}

// run pulls jobs until the sentinel arrives. Every real job gets exactly
// one outcome sent on its reply channel, on every code path.
func (w *searchWorker) run(ctx context.Context, jobs <-chan job) {
	for j := range jobs {
		if j.path == "" {
			logger.Debug("worker %d shutting down", w.id)
			return
		}
		j.reply <- w.search(ctx, j.path)
	}
}

// search classifies the file and dispatches to the matching extractor.
// Failures are confined to this file's outcome; they never crash the
// worker or block other files.
func (w *searchWorker) search(ctx context.Context, path string) domain.FileOutcome {
	mimeType, err := w.classifier.MIMEType(path)
	if err != nil {
		return domain.Failed(path, err)
	}
	logger.Debug("worker %d: %s is %s", w.id, path, mimeType)

	extractor := w.registry.ForMIMEType(mimeType)
	if extractor == nil {
		// Unrecognised type: skipped silently, not an error.
		return domain.NoMatch(path)
	}

	set, err := extractor.Extract(ctx, w.term, path)
	if err != nil {
		return domain.Failed(path, err)
	}
	if set == nil {
		return domain.NoMatch(path)
	}
	return domain.Matched(set)
}
