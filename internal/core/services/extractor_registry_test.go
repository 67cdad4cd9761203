package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
)

type stubExtractor struct {
	kind  domain.FormatKind
	mimes []string
}

func (s *stubExtractor) FormatKind() domain.FormatKind { return s.kind }
func (s *stubExtractor) SupportedMIMETypes() []string  { return s.mimes }
func (s *stubExtractor) Extract(context.Context, string, string) (*domain.SearchResultSet, error) {
	return nil, nil
}

func TestExtractorRegistry_ForMIMEType(t *testing.T) {
	text := &stubExtractor{kind: domain.FormatText, mimes: []string{"text/*"}}
	pdf := &stubExtractor{kind: domain.FormatPDF, mimes: []string{"application/pdf"}}
	odt := &stubExtractor{kind: domain.FormatODT, mimes: []string{"application/vnd.oasis.opendocument.text"}}
	registry := NewExtractorRegistry(text, pdf, odt)

	t.Run("exact match", func(t *testing.T) {
		ex := registry.ForMIMEType("application/pdf")
		require.NotNil(t, ex)
		assert.Equal(t, domain.FormatPDF, ex.FormatKind())
	})

	t.Run("wildcard matches the whole top-level type", func(t *testing.T) {
		for _, mt := range []string{"text/plain", "text/x-python", "text/markdown"} {
			ex := registry.ForMIMEType(mt)
			require.NotNil(t, ex, mt)
			assert.Equal(t, domain.FormatText, ex.FormatKind())
		}
	})

	t.Run("odt exact type", func(t *testing.T) {
		ex := registry.ForMIMEType("application/vnd.oasis.opendocument.text")
		require.NotNil(t, ex)
		assert.Equal(t, domain.FormatODT, ex.FormatKind())
	})

	t.Run("unrecognised type returns nil", func(t *testing.T) {
		assert.Nil(t, registry.ForMIMEType("video/mp4"))
		assert.Nil(t, registry.ForMIMEType("application/zip"))
	})

	t.Run("parameters are tolerated", func(t *testing.T) {
		ex := registry.ForMIMEType("text/plain; charset=utf-8")
		require.NotNil(t, ex)
		assert.Equal(t, domain.FormatText, ex.FormatKind())
	})

	t.Run("exact wins over wildcard", func(t *testing.T) {
		special := &stubExtractor{kind: domain.FormatPDF, mimes: []string{"text/pdfish"}}
		r := NewExtractorRegistry(text, special)

		ex := r.ForMIMEType("text/pdfish")
		require.NotNil(t, ex)
		assert.Equal(t, domain.FormatPDF, ex.FormatKind())
	})
}
