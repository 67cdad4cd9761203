package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
)

func newTestPresenter(jsonMode bool) (*Presenter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return New(out, errOut, jsonMode, false), out, errOut
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Presenter = (*Presenter)(nil)
}

func TestPresent_Text(t *testing.T) {
	p, out, errOut := newTestPresenter(false)

	p.Present(domain.NewResultSet("/tmp/a.txt", "foo", domain.FormatText, []domain.SearchResult{
		{Filepath: "/tmp/a.txt", Text: "foo at the start", Location: domain.LineLocation(0)},
		{Filepath: "/tmp/a.txt", Text: "trailing spaces foo   ", Location: domain.LineLocation(4)},
	}))

	assert.Equal(t,
		"/tmp/a.txt, L0: foo at the start\n"+
			"/tmp/a.txt, L4: trailing spaces foo\n",
		out.String())
	assert.Empty(t, errOut.String())
}

func TestPresent_PDF(t *testing.T) {
	p, out, _ := newTestPresenter(false)

	p.Present(domain.NewResultSet("/tmp/r.pdf", "foo", domain.FormatPDF, []domain.SearchResult{
		{Filepath: "/tmp/r.pdf", Text: "foo on page three", Location: domain.PageLocation(3)},
	}))

	assert.Equal(t, "/tmp/r.pdf, P3: foo on page three\n", out.String())
}

func TestPresent_ODT(t *testing.T) {
	p, out, _ := newTestPresenter(false)

	p.Present(domain.NewResultSet("/tmp/d.odt", "beta", domain.FormatODT, []domain.SearchResult{
		{Filepath: "/tmp/d.odt", Text: "alpha beta", Location: domain.SectionLocation{"Intro", "Details"}},
	}))

	assert.Equal(t, "/tmp/d.odt, § Intro > Details: alpha beta\n", out.String())
}

func TestPresent_ODT_HeadingOnlyMatch(t *testing.T) {
	// A heading hit has no body text; the section path stands alone.
	p, out, _ := newTestPresenter(false)

	p.Present(domain.NewResultSet("/tmp/d.odt", "Results", domain.FormatODT, []domain.SearchResult{
		{Filepath: "/tmp/d.odt", Location: domain.SectionLocation{"Results"}},
	}))

	assert.Equal(t, "/tmp/d.odt, § Results\n", out.String())
}

func TestPresent_JSONLines(t *testing.T) {
	p, out, errOut := newTestPresenter(true)

	p.Present(domain.NewResultSet("/tmp/a.txt", "foo", domain.FormatText, []domain.SearchResult{
		{Filepath: "/tmp/a.txt", Text: "foo", Location: domain.LineLocation(0)},
	}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "/tmp/a.txt", decoded["path"])
	assert.Equal(t, "foo", decoded["term"])
	assert.Equal(t, "text", decoded["format"])
	assert.NotEmpty(t, decoded["id"])

	results, ok := decoded["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), first["line"])
	assert.Empty(t, errOut.String())
}

func TestPresentError(t *testing.T) {
	p, out, errOut := newTestPresenter(false)

	p.PresentError("/tmp/broken.pdf", errors.New("exit status 1"))

	assert.Empty(t, out.String(), "failures must not pollute the result stream")
	assert.Equal(t, "error: /tmp/broken.pdf: exit status 1\n", errOut.String())
}
