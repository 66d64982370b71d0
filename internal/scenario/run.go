package scenario

import (
	"fmt"

	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/engine/cursor"
	"github.com/dshills/richcursor/internal/engine/post"
)

// Result is the outcome of one probe.
type Result struct {
	Probe Probe

	// Anchor and Focus are the native endpoints the probe selected.
	Anchor dom.Point
	Focus  dom.Point

	// Offsets is the resolved range when Err is nil.
	Offsets cursor.Range
	Err     error

	Pass     bool
	Mismatch string
}

// Run places every probe on the fixture's selection and records the result.
func (f *Fixture) Run(probes []Probe) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		results = append(results, f.runProbe(p))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Pass {
			out = append(out, r)
		}
	}
	return out
}

func (f *Fixture) runProbe(p Probe) Result {
	res := Result{Probe: p}
	res.Offsets, res.Err = f.resolve(p, &res)

	switch {
	case p.Expect.Error && res.Err != nil:
		res.Pass = true
	case p.Expect.Error:
		res.Mismatch = fmt.Sprintf("expected an error, resolved %s", FormatRange(res.Offsets))
	case res.Err != nil:
		res.Mismatch = res.Err.Error()
	default:
		res.Mismatch = compare("head", p.Expect.Head, res.Offsets.Head)
		if res.Mismatch == "" && p.Expect.Tail != nil {
			res.Mismatch = compare("tail", p.Expect.Tail, res.Offsets.Tail)
		}
		res.Pass = res.Mismatch == ""
	}
	return res
}

// resolve places the probe's endpoints on the selection and reads back
// the editor's offsets.
func (f *Fixture) resolve(p Probe, res *Result) (cursor.Range, error) {
	anchor, err := f.endpoint(p.Anchor)
	if err != nil {
		return cursor.Range{}, fmt.Errorf("anchor: %w", err)
	}
	focus := anchor
	if p.Focus != nil {
		if focus, err = f.endpoint(*p.Focus); err != nil {
			return cursor.Range{}, fmt.Errorf("focus: %w", err)
		}
	}
	res.Anchor, res.Focus = anchor, focus

	if err := f.Editor.Selection().SetBaseAndExtent(anchor.Node, anchor.Offset, focus.Node, focus.Offset); err != nil {
		return cursor.Range{}, err
	}
	return f.Editor.Offsets()
}

func (f *Fixture) endpoint(e Endpoint) (dom.Point, error) {
	n := dom.Walk(f.Root, e.Path)
	if n == nil {
		return dom.Point{}, fmt.Errorf("%w: %v", ErrNoNode, e.Path)
	}
	return dom.Point{Node: n, Offset: e.Offset}, nil
}

func compare(name string, want []int, got post.Position) string {
	idx := sectionIndex(got)
	if idx == want[0] && got.Offset == want[1] {
		return ""
	}
	return fmt.Sprintf("%s: got [%d, %d], want [%d, %d]", name, idx, got.Offset, want[0], want[1])
}

func sectionIndex(p post.Position) int {
	if p.Section == nil || p.Section.Post() == nil {
		return -1
	}
	return p.Section.Post().IndexOf(p.Section)
}

// FormatPosition formats p as [section, offset].
func FormatPosition(p post.Position) string {
	return fmt.Sprintf("[%d, %d]", sectionIndex(p), p.Offset)
}

// FormatRange formats r as head..tail.
func FormatRange(r cursor.Range) string {
	if r.IsCollapsed() {
		return FormatPosition(r.Head)
	}
	return FormatPosition(r.Head) + ".." + FormatPosition(r.Tail)
}
