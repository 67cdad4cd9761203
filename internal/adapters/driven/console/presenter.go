// Package console renders search outcomes to the terminal.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/supergrep-dev/supergrep/internal/core/domain"
	"github.com/supergrep-dev/supergrep/internal/core/ports/driven"
)

// Ensure Presenter implements the interface.
var _ driven.Presenter = (*Presenter)(nil)

// Presenter renders result sets as they stream out of the engine.
// Rendering is selected by the set's format kind with an exhaustive
// switch, so adding a format is a compile-visible change rather than a
// runtime name lookup.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
	json   bool

	pathStyle lipgloss.Style
	locStyle  lipgloss.Style
	termStyle lipgloss.Style
	textStyle lipgloss.Style
	errStyle  lipgloss.Style
}

// New creates a presenter writing results to out and failures to errOut.
// With colour false every style renders as plain text, which also makes
// output assertable in tests.
func New(out, errOut io.Writer, jsonMode, colour bool) *Presenter {
	r := lipgloss.NewRenderer(out)
	if !colour {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Presenter{
		out:       out,
		errOut:    errOut,
		json:      jsonMode,
		pathStyle: r.NewStyle().Foreground(lipgloss.Color("5")),
		locStyle:  r.NewStyle().Foreground(lipgloss.Color("2")),
		termStyle: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		textStyle: r.NewStyle().Bold(true),
		errStyle:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Present renders one file's result set.
func (p *Presenter) Present(set *domain.SearchResultSet) {
	if p.json {
		p.presentJSON(set)
		return
	}

	switch set.Format {
	case domain.FormatText:
		p.presentText(set)
	case domain.FormatPDF:
		p.presentPDF(set)
	case domain.FormatODT:
		p.presentODT(set)
	}
}

// PresentError reports a per-file failure on the error stream without
// suppressing other files' results.
func (p *Presenter) PresentError(path string, err error) {
	fmt.Fprintln(p.errOut, p.errStyle.Render(fmt.Sprintf("error: %s: %v", path, err)))
}

// presentJSON emits one JSON object per result set (JSON Lines).
func (p *Presenter) presentJSON(set *domain.SearchResultSet) {
	if err := json.NewEncoder(p.out).Encode(set); err != nil {
		fmt.Fprintln(p.errOut, p.errStyle.Render(fmt.Sprintf("error: encode %s: %v", set.Path, err)))
	}
}

func (p *Presenter) presentText(set *domain.SearchResultSet) {
	for _, res := range set.Results {
		line, _ := res.Location.(domain.LineLocation)
		fmt.Fprintf(p.out, "%s, %s: %s\n",
			p.pathStyle.Render(res.Filepath),
			p.locStyle.Render(fmt.Sprintf("L%d", int(line))),
			p.highlight(strings.TrimRight(res.Text, " \t\r\n"), set.Term))
	}
}

func (p *Presenter) presentPDF(set *domain.SearchResultSet) {
	for _, res := range set.Results {
		page, _ := res.Location.(domain.PageLocation)
		fmt.Fprintf(p.out, "%s, %s: %s\n",
			p.pathStyle.Render(res.Filepath),
			p.locStyle.Render(fmt.Sprintf("P%d", int(page))),
			p.highlight(res.Text, set.Term))
	}
}

func (p *Presenter) presentODT(set *domain.SearchResultSet) {
	for _, res := range set.Results {
		section, _ := res.Location.(domain.SectionLocation)
		loc := p.locStyle.Render("§ " + strings.Join(section, " > "))

		if res.Text == "" {
			// Heading-only match: the section path itself is the hit.
			fmt.Fprintf(p.out, "%s, %s\n", p.pathStyle.Render(res.Filepath), loc)
			continue
		}
		fmt.Fprintf(p.out, "%s, %s: %s\n",
			p.pathStyle.Render(res.Filepath), loc, p.highlight(res.Text, set.Term))
	}
}

// highlight marks every occurrence of term inside text. Segments are
// styled separately so the term's colour does not bleed into the
// surrounding text.
func (p *Presenter) highlight(text, term string) string {
	parts := strings.Split(text, term)
	styled := make([]string, len(parts))
	for i, part := range parts {
		styled[i] = p.textStyle.Render(part)
	}
	return strings.Join(styled, p.termStyle.Render(term))
}
