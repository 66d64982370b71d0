package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/richcursor/internal/engine/post"
)

const acceptance = "../../internal/scenario/testdata/acceptance.yaml"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cli := CLI{Globals: Globals{Stdout: &stdout, Stderr: &stderr}}
	parser, err := newParser(&cli, func(code int) {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	})
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return stdout.String(), err
	}
	err = ctx.Run(&cli.Globals)
	return stdout.String(), err
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "richcursor dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestProbeAcceptance(t *testing.T) {
	out, err := runCLI(t, "probe", acceptance)
	if err != nil {
		t.Fatalf("probe: %v\n%s", err, out)
	}
	if !strings.Contains(out, "8/8 probes passed") {
		t.Errorf("summary missing from output:\n%s", out)
	}
	if strings.Contains(out, "FAIL") {
		t.Errorf("unexpected failure:\n%s", out)
	}
}

func TestProbeVerboseDrawsCarets(t *testing.T) {
	out, err := runCLI(t, "probe", "--verbose", acceptance)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if !strings.Contains(out, "aa[my-atom]cc") {
		t.Errorf("section line missing:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("caret missing:\n%s", out)
	}
}

func TestProbeMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wrong.yaml")
	data := `post:
  - markup: p
    markers:
      - {text: abc}
probes:
  - name: off by one
    anchor: {path: [0, 0], offset: 1}
    expect: {head: [0, 2]}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "probe", path)
	if !errors.Is(err, errMismatch) {
		t.Fatalf("err = %v, want errMismatch", err)
	}
	if !strings.Contains(out, "FAIL off by one") {
		t.Errorf("failure line missing:\n%s", out)
	}
	if !strings.Contains(out, "0/1 probes passed") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestProbeConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "richcursor.toml")
	if err := os.WriteFile(cfgPath, []byte("[cursor]\ncardBoundaryRepair = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	scenarioPath := filepath.Join(dir, "repair.yaml")
	data := `cards: [my-card]
post:
  - card: my-card
  - markup: p
    markers:
      - {text: abc}
probes:
  - name: section head after card
    anchor: {path: [1], offset: 0}
    expect: {head: [1, 0]}
`
	if err := os.WriteFile(scenarioPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "--config", cfgPath, "probe", scenarioPath); err != nil {
		t.Errorf("with repair disabled: %v", err)
	}
	if _, err := runCLI(t, "probe", scenarioPath); !errors.Is(err, errMismatch) {
		t.Errorf("with repair enabled: err = %v, want errMismatch", err)
	}
}

func TestRender(t *testing.T) {
	out, err := runCLI(t, "render", acceptance)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		`<p>aa<span class="-mobiledoc-kit__atom">`,
		`<div class="__mobiledoc-card">`,
		"<b>cc</b>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestSectionLine(t *testing.T) {
	p, err := post.Build(func(b *post.Builder) *post.Post {
		return b.Post(
			b.MarkupSection("p", b.Marker("a😀"), b.Atom("mention", "sam", nil), b.Marker("世界")),
			b.CardSection("image", nil),
		)
	})
	if err != nil {
		t.Fatal(err)
	}
	markup := p.SectionAt(0)
	card := p.SectionAt(1)

	tests := []struct {
		name     string
		pos      post.Position
		wantText string
		wantCol  int
	}{
		{"head", post.Position{Section: markup, Offset: 0}, "a😀[sam]世界", 0},
		{"after emoji", post.Position{Section: markup, Offset: 3}, "a😀[sam]世界", 3},
		{"split surrogate", post.Position{Section: markup, Offset: 2}, "a😀[sam]世界", 1},
		{"after atom", post.Position{Section: markup, Offset: 4}, "a😀[sam]世界", 8},
		{"inside wide text", post.Position{Section: markup, Offset: 5}, "a😀[sam]世界", 10},
		{"card head", post.Position{Section: card, Offset: 0}, "[card image]", 0},
		{"card tail", post.Position{Section: card, Offset: 1}, "[card image]", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, col := sectionLine(tt.pos)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if col != tt.wantCol {
				t.Errorf("col = %d, want %d", col, tt.wantCol)
			}
		})
	}
}
