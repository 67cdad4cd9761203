package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
)

// DefaultTool is the external converter used when no override is
// configured.
const DefaultTool = "pdftotext"

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// execRunner runs commands for real; the default when no runner is
// injected. A non-zero exit surfaces as an *exec.ExitError from Output.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor searches PDFs by shelling out to pdftotext and splitting its
// output into pages on the form-feed character.
type Extractor struct {
	tool   string
	runner driven.CommandRunner
}

// New creates a PDF extractor using the pdftotext binary on PATH.
func New() *Extractor {
	return NewWithTool("")
}

// NewWithTool creates a PDF extractor running the given converter binary.
// An empty tool selects DefaultTool.
func NewWithTool(tool string) *Extractor {
	return NewWithRunner(tool, execRunner{})
}

// NewWithRunner creates a PDF extractor with an explicit command runner.
// Tests inject a mock runner here.
func NewWithRunner(tool string, runner driven.CommandRunner) *Extractor {
	if tool == "" {
		tool = DefaultTool
	}
	return &Extractor{tool: tool, runner: runner}
}

// CheckAvailable reports whether the converter is installed. The CLI calls
// this before any search begins so a missing tool aborts the whole run up
// front instead of failing file by file.
func (e *Extractor) CheckAvailable() error {
	if _, err := exec.LookPath(e.tool); err != nil {
		return fmt.Errorf("%w: %q is not on PATH (%s)", domain.ErrPDFToolNotFound, e.tool, InstallInstructions())
	}
	return nil
}

// InstallInstructions tells the user how to get pdftotext.
func InstallInstructions() string {
	return "pdftotext ships with poppler: brew install poppler (macOS) or apt install poppler-utils (Debian/Ubuntu)"
}

// FormatKind identifies the location kind this extractor produces.
func (e *Extractor) FormatKind() domain.FormatKind { return domain.FormatPDF }

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Extract converts path to text and searches it page by page. pdftotext
// separates pages with a form feed, so page numbers are 1-indexed segment
// positions. A term the converter splits across a page boundary is not
// merged; each page is searched independently.
func (e *Extractor) Extract(ctx context.Context, term, path string) (*domain.SearchResultSet, error) {
	out, err := e.runner.Run(ctx, e.tool, path, "-")
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", e.tool, path, err)
	}

	var results []domain.SearchResult
	for i, page := range strings.Split(string(out), "\f") {
		pageNo := i + 1
		for _, line := range strings.Split(page, "\n") {
			if strings.Contains(line, term) {
				results = append(results, domain.SearchResult{
					Filepath: path,
					Text:     strings.TrimSpace(line),
					Location: domain.PageLocation(pageNo),
				})
			}
		}
	}

	return domain.NewResultSet(path, term, domain.FormatPDF, results), nil
}
