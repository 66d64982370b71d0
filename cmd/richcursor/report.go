package main

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/dshills/richcursor/internal/engine/post"
	"github.com/dshills/richcursor/internal/scenario"
)

// Styles holds the report styles.
type Styles struct {
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Name    lipgloss.Style
	Detail  lipgloss.Style
	Section lipgloss.Style
	Caret   lipgloss.Style
	Summary lipgloss.Style
}

// DefaultStyles returns the default report styles.
func DefaultStyles() Styles {
	return Styles{
		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Name:    lipgloss.NewStyle().Bold(true),
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Section: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Caret:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Summary: lipgloss.NewStyle().Bold(true),
	}
}

// report renders probe results.
type report struct {
	styles  Styles
	verbose bool
}

func newReport(styles Styles, verbose bool) *report {
	return &report{styles: styles, verbose: verbose}
}

// Render formats results for the terminal. Failing probes always draw the
// caret diagram; passing probes only when verbose.
func (r *report) Render(title string, results []scenario.Result) string {
	var b strings.Builder
	b.WriteString(r.styles.Name.Render(title))
	b.WriteByte('\n')

	passed := 0
	for _, res := range results {
		if res.Pass {
			passed++
			b.WriteString(r.styles.Pass.Render("PASS"))
		} else {
			b.WriteString(r.styles.Fail.Render("FAIL"))
		}
		b.WriteByte(' ')
		b.WriteString(res.Probe.Name)

		if res.Err != nil {
			b.WriteString(r.styles.Detail.Render(" error: " + res.Err.Error()))
		} else {
			b.WriteString(r.styles.Detail.Render(" " + scenario.FormatRange(res.Offsets)))
		}
		b.WriteByte('\n')

		if !res.Pass {
			b.WriteString("     ")
			b.WriteString(r.styles.Detail.Render(res.Mismatch))
			b.WriteByte('\n')
		}
		if res.Err == nil && (r.verbose || !res.Pass) {
			b.WriteString(r.diagram(res.Offsets.Head))
			if !res.Offsets.IsCollapsed() {
				b.WriteString(r.diagram(res.Offsets.Tail))
			}
		}
	}

	summary := fmt.Sprintf("%d/%d probes passed", passed, len(results))
	b.WriteString(r.styles.Summary.Render(summary))
	b.WriteByte('\n')
	return b.String()
}

// diagram draws the section text with a caret under the position.
func (r *report) diagram(p post.Position) string {
	if p.Section == nil {
		return ""
	}
	text, col := sectionLine(p)
	var b strings.Builder
	b.WriteString("     ")
	b.WriteString(r.styles.Section.Render(text))
	b.WriteString("\n     ")
	b.WriteString(strings.Repeat(" ", col))
	b.WriteString(r.styles.Caret.Render("^"))
	b.WriteString(r.styles.Detail.Render(" " + scenario.FormatPosition(p)))
	b.WriteByte('\n')
	return b.String()
}

// sectionLine returns a one-line rendition of the position's section and
// the display column of its offset. Atoms show as [value] and cards as
// [card name].
func sectionLine(p post.Position) (string, int) {
	switch s := p.Section.(type) {
	case *post.CardSection:
		label := "[card " + s.Name() + "]"
		if p.Offset == 0 {
			return label, 0
		}
		return label, uniseg.StringWidth(label)
	case *post.MarkupSection:
		var line, prefix strings.Builder
		remaining := p.Offset
		for _, m := range s.Markers() {
			var text string
			if m.IsAtom() {
				text = "[" + m.Value + "]"
			} else {
				text = m.Value
			}
			line.WriteString(text)

			switch {
			case remaining <= 0:
			case remaining >= m.Length():
				prefix.WriteString(text)
				remaining -= m.Length()
			default:
				prefix.WriteString(utf16Prefix(m.Value, remaining))
				remaining = 0
			}
		}
		return line.String(), uniseg.StringWidth(prefix.String())
	}
	return "", 0
}

// utf16Prefix returns the prefix of s spanning n UTF-16 code units. A
// count that splits a surrogate pair stops before the pair.
func utf16Prefix(s string, n int) string {
	units := 0
	for i, r := range s {
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if units+w > n {
			return s[:i]
		}
		units += w
	}
	return s
}
