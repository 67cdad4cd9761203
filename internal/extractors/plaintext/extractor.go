package plaintext

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// maxLineBytes caps a single scanned line. Minified assets blow through
// bufio's 64K default.
const maxLineBytes = 4 * 1024 * 1024

// Extractor searches plain text files line by line. Each file is decoded
// with the encoding the classifier reports for it; mixed-encoding corpora
// are the expected case, not an edge case.
type Extractor struct {
	classifier driven.TypeClassifier
}

// New creates a plain text extractor resolving encodings through classifier.
func New(classifier driven.TypeClassifier) *Extractor {
	return &Extractor{classifier: classifier}
}

// FormatKind identifies the location kind this extractor produces.
func (e *Extractor) FormatKind() domain.FormatKind { return domain.FormatText }

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/*"}
}

// Extract scans path for term, emitting one result per matching line with
// its 0-indexed line number.
func (e *Extractor) Extract(_ context.Context, term, path string) (*domain.SearchResultSet, error) {
	charset, err := e.classifier.Encoding(path)
	if err != nil {
		return nil, fmt.Errorf("detect encoding of %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader, err := decodingReader(f, charset)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var results []domain.SearchResult
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for lineNo := 0; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.Contains(line, term) {
			results = append(results, domain.SearchResult{
				Filepath: path,
				Text:     line,
				Location: domain.LineLocation(lineNo),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return domain.NewResultSet(path, term, domain.FormatText, results), nil
}

// decodingReader wraps r so it yields UTF-8 regardless of the source
// charset. UTF-8 and its ASCII subset pass through undecoded.
func decodingReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "us-ascii", "ascii":
		return r, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
