package odt

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
)

// textNS is the OpenDocument text vocabulary. Headings are identified by
// their namespace-qualified name, never by prefix.
const textNS = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor searches OpenDocument Text files. The content.xml tree is
// walked depth first while a stack of enclosing heading titles is
// maintained; every match is located by a snapshot of that stack.
type Extractor struct{}

// New creates an ODT extractor.
func New() *Extractor { return &Extractor{} }

// FormatKind identifies the location kind this extractor produces.
func (e *Extractor) FormatKind() domain.FormatKind { return domain.FormatODT }

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/vnd.oasis.opendocument.text"}
}

// node is a generic element of content.xml. Text collects the character
// data directly inside the element; nested elements land in Children.
type node struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Children []node `xml:",any"`
}

func (n *node) isHeading() bool {
	return n.XMLName.Space == textNS && n.XMLName.Local == "h"
}

// Extract opens path as a zip container and searches its content.xml tree
// for term. A corrupt archive or unparseable tree fails this file; it is
// never reported as "no match".
func (e *Extractor) Extract(_ context.Context, term, path string) (*domain.SearchResultSet, error) {
	root, err := readContentTree(path)
	if err != nil {
		return nil, err
	}

	w := &walker{term: term, filepath: path}
	w.visit(root)

	return domain.NewResultSet(path, term, domain.FormatODT, w.results), nil
}

// readContentTree parses the content.xml member of the archive at path.
func readContentTree(path string) (*node, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrMalformedDocument, path, err)
	}
	defer archive.Close()

	for _, member := range archive.File {
		if member.Name != "content.xml" {
			continue
		}

		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s content.xml: %v", domain.ErrMalformedDocument, path, err)
		}
		defer rc.Close()

		var root node
		if err := xml.NewDecoder(rc).Decode(&root); err != nil {
			return nil, fmt.Errorf("%w: parse %s content.xml: %v", domain.ErrMalformedDocument, path, err)
		}
		return &root, nil
	}
	return nil, fmt.Errorf("%w: %s has no content.xml", domain.ErrMalformedDocument, path)
}

// walker carries the mutable section-path stack through the traversal.
type walker struct {
	term     string
	filepath string
	stack    []string
	results  []domain.SearchResult
}

// visit walks n depth first, pre-order. A heading pushes its title before
// its subtree is visited and pops it after, so sibling headings never
// inherit each other's accumulated section paths. Every emitted result
// snapshots the stack; a live reference would alias later mutations.
func (w *walker) visit(n *node) {
	if n.isHeading() {
		title := strings.TrimSpace(n.Text)
		w.stack = append(w.stack, title)
		if strings.Contains(title, w.term) {
			// Heading-only match: the section path is the result,
			// there is no separate matched text.
			w.results = append(w.results, domain.SearchResult{
				Filepath: w.filepath,
				Location: domain.NewSectionLocation(w.stack),
			})
		}
		for i := range n.Children {
			w.visit(&n.Children[i])
		}
		w.stack = w.stack[:len(w.stack)-1]
		return
	}

	if text := strings.TrimSpace(n.Text); text != "" && strings.Contains(text, w.term) {
		w.results = append(w.results, domain.SearchResult{
			Filepath: w.filepath,
			Text:     text,
			Location: domain.NewSectionLocation(w.stack),
		})
	}
	for i := range n.Children {
		w.visit(&n.Children[i])
	}
}
