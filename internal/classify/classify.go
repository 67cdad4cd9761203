// Package classify implements the driven.TypeClassifier port from file
// content and extension. Content wins over extension: a renamed PDF is
// still a PDF.
package classify

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
)

// Ensure Classifier implements the interface.
var _ driven.TypeClassifier = (*Classifier)(nil)

// sniffLen matches http.DetectContentType's window.
const sniffLen = 512

// Classifier identifies MIME types and character encodings.
type Classifier struct{}

// New creates a classifier.
func New() *Classifier { return &Classifier{} }

// extMIMETypes maps extensions to MIME types for common types missing or
// mapped badly in Go's registry.
var extMIMETypes = map[string]string{
	".txt":  "text/plain",
	".log":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".yaml": "text/yaml", ".yml": "text/yaml",
	".toml": "text/toml",
	".go": "text/x-go", ".py": "text/x-python", ".rs": "text/x-rust",
	".sh":  "text/x-shellscript",
	".odt": "application/vnd.oasis.opendocument.text",
	".pdf": "application/pdf",
}

// MIMEType returns the MIME type of the file at path, without parameters.
func (c *Classifier) MIMEType(path string) (string, error) {
	head, err := readHead(path)
	if err != nil {
		return "", err
	}

	if bytes.HasPrefix(head, []byte("%PDF-")) {
		return "application/pdf", nil
	}
	if bytes.HasPrefix(head, []byte("PK\x03\x04")) {
		// Zip container. OpenDocument archives name their own type in a
		// dedicated "mimetype" member.
		if mt := zipContainerType(path); mt != "" {
			return mt, nil
		}
		return "application/zip", nil
	}

	if mt := byExtension(path); mt != "" {
		if strings.HasPrefix(mt, "text/") && looksBinary(head) {
			// Extension claims text but the content disagrees.
			return "application/octet-stream", nil
		}
		return mt, nil
	}

	detected := http.DetectContentType(head)
	return stripParams(detected), nil
}

// Encoding returns the IANA character set name for the text file at path.
func (c *Classifier) Encoding(path string) (string, error) {
	head, err := readHead(path)
	if err != nil {
		return "", err
	}

	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		return "utf-8", nil
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return "utf-16le", nil
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return "utf-16be", nil
	}

	if looksBinary(head) {
		return "binary", nil
	}
	if isASCII(head) {
		return "us-ascii", nil
	}
	if utf8.Valid(trimPartialRune(head)) {
		return "utf-8", nil
	}
	// Single-byte text that is not valid UTF-8. ISO-8859-1 decodes any
	// byte sequence, the same fallback libmagic makes.
	return "iso-8859-1", nil
}

// readHead reads the sniff window from the start of the file.
func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotRegularFile)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return head[:n], nil
}

// byExtension resolves a MIME type from the file extension alone.
func byExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	if mt, ok := extMIMETypes[ext]; ok {
		return mt
	}
	return stripParams(mime.TypeByExtension(ext))
}

// zipContainerType reads the "mimetype" member of a zip archive, which
// OpenDocument files store uncompressed as their first entry.
func zipContainerType(path string) string {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return ""
	}
	defer archive.Close()

	for _, member := range archive.File {
		if member.Name != "mimetype" {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return ""
		}
		data, err := io.ReadAll(io.LimitReader(rc, 256))
		rc.Close()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(data))
	}
	return ""
}

func stripParams(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		return strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// looksBinary applies libmagic's rough rule: NUL bytes mean binary.
func looksBinary(b []byte) bool {
	return bytes.IndexByte(b, 0) != -1
}

// trimPartialRune drops a trailing multi-byte sequence the sniff window
// may have cut in half, so a truncated rune does not disqualify UTF-8.
func trimPartialRune(b []byte) []byte {
	for i := 0; i < 3 && len(b) > 0; i++ {
		if r, size := utf8.DecodeLastRune(b); r != utf8.RuneError || size > 1 {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}
