package lua

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/plugin"
)

const atomScript = `
plugin = {
  name = "mention",
  kind = "atom",
  render = function(env)
    return { tag = "span", class = "mention", text = "@" .. env.value }
  end,
}
`

const cardScript = `
plugin = {
  name = "image",
  kind = "card",
  render = function(env)
    return {
      tag = "figure",
      attrs = { ["data-src"] = env.payload.src },
      children = { { tag = "img" }, "caption" },
    }
  end,
  edit = function(env)
    return "editing " .. env.mode
  end,
}
`

func TestLoadAtom(t *testing.T) {
	p, err := Load(atomScript)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer p.(*Plugin).Close()

	if p.Name() != "mention" || p.Kind() != plugin.KindAtom {
		t.Errorf("unexpected plugin %s/%s", p.Name(), p.Kind())
	}
	if _, ok := p.(plugin.Editable); ok {
		t.Error("atom should not be editable")
	}

	node, err := p.Render(plugin.Env{Name: "mention", Value: "bob"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := dom.String(node); got != `<span class="mention">@bob</span>` {
		t.Errorf("unexpected render %q", got)
	}
}

func TestLoadEditableCard(t *testing.T) {
	p, err := Load(cardScript)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	card, ok := p.(*EditablePlugin)
	if !ok {
		t.Fatalf("card with edit hook should be editable, got %T", p)
	}
	defer card.Close()

	node, err := card.Render(plugin.Env{Payload: map[string]any{"src": "a.png"}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := dom.String(node); got != `<figure data-src="a.png"><img/>caption</figure>` {
		t.Errorf("unexpected render %q", got)
	}

	node, err = plugin.Edit(card, plugin.Env{})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if node.Data != "editing edit" {
		t.Errorf("unexpected edit output %q", node.Data)
	}
}

func TestLoadRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"syntax error", "plugin = {"},
		{"no table", "x = 1"},
		{"no name", `plugin = { kind = "card", render = function() end }`},
		{"bad kind", `plugin = { name = "x", kind = "widget", render = function() end }`},
		{"no render", `plugin = { name = "x", kind = "card" }`},
		{"atom with edit", `plugin = { name = "x", kind = "atom", render = function() end, edit = function() end }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.source); !errors.Is(err, plugin.ErrInvalidPlugin) {
				t.Errorf("expected ErrInvalidPlugin, got %v", err)
			}
		})
	}
}

func TestRenderNilAndBadResults(t *testing.T) {
	p, err := Load(`plugin = { name = "n", kind = "card", render = function(env) return nil end }`)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	node, err := p.Render(plugin.Env{})
	if err != nil || node != nil {
		t.Errorf("nil result should render nothing, got %v, %v", node, err)
	}

	p, err = Load(`plugin = { name = "b", kind = "card", render = function(env) return { text = "no tag" } end }`)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := p.Render(plugin.Env{}); !errors.Is(err, ErrBadRenderResult) {
		t.Errorf("expected ErrBadRenderResult, got %v", err)
	}
}

func TestRenderTimeout(t *testing.T) {
	p, err := Load(`plugin = { name = "spin", kind = "card", render = function(env) while true do end end }`,
		WithExecutionTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := p.Render(plugin.Env{}); err == nil {
		t.Error("expected the runaway hook to be interrupted")
	}
}

func TestSandboxRemovesLoaders(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "require"} {
		if err := s.DoString(name + `("/etc/passwd")`); err == nil {
			t.Errorf("%s should be unavailable", name)
		}
	}
	if s.GetGlobal("io").Type().String() != "nil" {
		t.Error("io library should not be opened")
	}

	s.Close()
	if err := s.DoString("x = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("expected ErrStateClosed, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mention.lua")
	if err := os.WriteFile(path, []byte(atomScript), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if p.Name() != "mention" {
		t.Errorf("unexpected name %q", p.Name())
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToGoValue(t *testing.T) {
	s := NewState()
	defer s.Close()

	if err := s.DoString(`v = { list = { 1, 2, 3 }, name = "x", ok = true }`); err != nil {
		t.Fatal(err)
	}
	m, ok := ToGoValue(s.GetGlobal("v")).(map[string]any)
	if !ok {
		t.Fatal("expected a map")
	}
	list, ok := m["list"].([]any)
	if !ok || len(list) != 3 || list[0] != int64(1) {
		t.Errorf("unexpected list %#v", m["list"])
	}
	if m["name"] != "x" || m["ok"] != true {
		t.Errorf("unexpected map %#v", m)
	}
}
