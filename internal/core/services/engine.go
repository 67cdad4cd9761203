package services

import (
	"context"
	"runtime"
	"sync"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driving"
	"github.com/supergrep-dev/supergrep/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.Searcher = (*Engine)(nil)

// job is one pending unit of work. A job with an empty path is the
// shutdown sentinel; every worker consumes exactly one before exiting, so
// no worker blocks forever on an empty queue.
type job struct {
	path  string
	reply chan<- domain.FileOutcome
}

// Engine owns the job queue and the worker pool.
//
// Replies are drained in path-submission order, not completion order: a
// slow file delays reporting of files listed after it even when those
// finish first.
type Engine struct {
	classifier driven.TypeClassifier
	registry   driven.ExtractorRegistry
	presenter  driven.Presenter
	workers    int
}

// DefaultWorkerCount is the pool size when none is configured: one worker
// per CPU, leaving one for the coordinator, floor 1.
func DefaultWorkerCount() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}

// NewEngine creates a search engine. A workers value below 1 selects
// DefaultWorkerCount.
func NewEngine(classifier driven.TypeClassifier, registry driven.ExtractorRegistry, presenter driven.Presenter, workers int) *Engine {
	if workers < 1 {
		workers = DefaultWorkerCount()
	}
	return &Engine{
		classifier: classifier,
		registry:   registry,
		presenter:  presenter,
		workers:    workers,
	}
}

// Run searches every path for term with the worker pool and streams each
// outcome to the presenter. It returns only after every worker has
// terminated, so no goroutine outlives the call.
func (e *Engine) Run(ctx context.Context, term string, paths []string) driving.Stats {
	// Buffered to hold every real job plus one sentinel per worker, so
	// the coordinator never blocks while it is still enqueuing.
	jobs := make(chan job, len(paths)+e.workers)

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		w := &searchWorker{
			id:         i,
			term:       term,
			classifier: e.classifier,
			registry:   e.registry,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx, jobs)
		}()
	}

	// One single-use reply channel per path. Buffered so a worker hands
	// off its outcome and returns to the queue without waiting for the
	// coordinator to reach that path's turn.
	replies := make([]chan domain.FileOutcome, len(paths))
	for i, path := range paths {
		replies[i] = make(chan domain.FileOutcome, 1)
		jobs <- job{path: path, reply: replies[i]}
	}

	// Exactly one sentinel per worker, after all real jobs.
	for i := 0; i < e.workers; i++ {
		jobs <- job{}
	}

	stats := driving.Stats{Searched: len(paths)}
	for _, reply := range replies {
		outcome := <-reply
		switch outcome.Kind {
		case domain.OutcomeMatched:
			stats.Matched++
			e.presenter.Present(outcome.Set)
		case domain.OutcomeFailed:
			stats.Failed++
			e.presenter.PresentError(outcome.Path, outcome.Err)
		case domain.OutcomeNoMatch:
			logger.Debug("no match: %s", outcome.Path)
		}
	}

	wg.Wait()
	return stats
}
