package renderer

import (
	"errors"
	"testing"

	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/engine/post"
	"github.com/dshills/richcursor/internal/plugin"
	"golang.org/x/net/html"
)

const z = dom.ZWNJ

func textHook(s string) plugin.RenderFunc {
	return func(plugin.Env) (*html.Node, error) {
		return dom.Text(s), nil
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	reg := plugin.NewRegistry()
	err := reg.Register(
		plugin.NewCard("my-card", textHook("card"), nil),
		plugin.NewAtom("my-atom", func(env plugin.Env) (*html.Node, error) {
			return dom.Text(env.Value), nil
		}),
	)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return New(reg, DefaultOptions())
}

func mustBuild(t *testing.T, fn func(b *post.Builder) *post.Post) *post.Post {
	t.Helper()
	p, err := post.Build(fn)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return p
}

func TestRenderMarkup(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *post.Builder) *post.Post
		want  string
	}{
		{
			name: "plain text",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.MarkupSection("p", b.Marker("abc")))
			},
			want: "<p>abc</p>",
		},
		{
			name: "blank section",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.MarkupSection("p"))
			},
			want: "<p><br/></p>",
		},
		{
			name: "nested markups",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.MarkupSection("h2", b.Marker("a"), b.Marker("b", "b", "em")))
			},
			want: "<h2>a<b><em>b</em></b></h2>",
		},
		{
			name: "atom between markers",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.MarkupSection("p",
					b.Marker("aa"), b.Atom("my-atom", "@x", nil), b.Marker("cc")))
			},
			want: `<p>aa<span class="-mobiledoc-kit__atom">` + z +
				`<span contenteditable="false">@x</span>` + z + `</span>cc</p>`,
		},
		{
			name: "card",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.CardSection("my-card", nil))
			},
			want: `<div class="__mobiledoc-card">` + z +
				`<div contenteditable="false">card</div>` + z + `</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t)
			root := dom.Element("div")
			if _, err := r.Render(mustBuild(t, tt.build), root); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if got := dom.InnerHTML(root); got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderReplacesExistingContent(t *testing.T) {
	r := newTestRenderer(t)
	root := dom.Append(dom.Element("div"), dom.Element("p"), dom.Text("stale"))
	p := mustBuild(t, func(b *post.Builder) *post.Post {
		return b.Post(b.MarkupSection("p", b.Marker("x")))
	})

	if _, err := r.Render(p, root); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := dom.InnerHTML(root); got != "<p>x</p>" {
		t.Errorf("rendered %q", got)
	}
}

func TestRenderTreeAssociations(t *testing.T) {
	r := newTestRenderer(t)
	root := dom.Element("div")
	p := mustBuild(t, func(b *post.Builder) *post.Post {
		return b.Post(
			b.MarkupSection("p", b.Marker("aa"), b.Atom("my-atom", "@", nil), b.Marker("cc", "b")),
			b.CardSection("my-card", nil),
		)
	})

	tree, err := r.Render(p, root)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// section, two markers, atom, card
	if tree.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tree.Len())
	}

	ms := p.SectionAt(0).(*post.MarkupSection)
	secNode, ok := tree.ForSection(ms)
	if !ok || secNode.Kind != KindMarkupSection || secNode.Element != root.FirstChild {
		t.Fatalf("ForSection(markup) = %+v, %v", secNode, ok)
	}

	atomNode, ok := tree.ForMarker(ms.MarkerAt(1))
	if !ok || atomNode.Kind != KindAtom {
		t.Fatalf("ForMarker(atom) = %+v, %v", atomNode, ok)
	}
	if atomNode.HeadPad.Data != z || atomNode.TailPad.Data != z {
		t.Error("atom pads should hold a zero-width non-joiner")
	}

	// The text node of "cc" sits inside <b>.
	cc, ok := tree.ForMarker(ms.MarkerAt(2))
	if !ok || !dom.IsText(cc.Element) || cc.Element.Parent.Data != "b" {
		t.Fatalf("ForMarker(cc) = %+v, %v", cc, ok)
	}

	owner, ok := tree.Owner(cc.Element.Parent)
	if !ok || owner != secNode {
		t.Errorf("Owner(<b>) = %+v, want markup section", owner)
	}
	owner, ok = tree.SectionOwner(atomNode.Payload.FirstChild)
	if !ok || owner != secNode {
		t.Errorf("SectionOwner(atom payload text) = %+v, want markup section", owner)
	}

	card := p.SectionAt(1)
	cardNode, ok := tree.ForSection(card)
	if !ok || cardNode.Kind != KindCardSection {
		t.Fatalf("ForSection(card) = %+v, %v", cardNode, ok)
	}
	if got, ok := tree.Lookup(cardNode.Element); !ok || got != cardNode {
		t.Error("Lookup should find the card wrapper")
	}
	if _, ok := tree.Owner(root); ok {
		t.Error("root should have no owner")
	}
}

func TestRenderPluginErrors(t *testing.T) {
	boom := errors.New("boom")
	reg := plugin.NewRegistry()
	if err := reg.Register(plugin.NewCard("bad", func(plugin.Env) (*html.Node, error) {
		return nil, boom
	}, nil)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	r := New(reg, Options{})

	tests := []struct {
		name   string
		build  func(b *post.Builder) *post.Post
		target error
	}{
		{
			name: "failing card hook",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.MarkupSection("p", b.Marker("a")), b.CardSection("bad", nil))
			},
			target: boom,
		},
		{
			name: "unknown card",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.CardSection("missing", nil))
			},
			target: plugin.ErrUnknownCard,
		},
		{
			name: "unknown atom",
			build: func(b *post.Builder) *post.Post {
				return b.Post(b.MarkupSection("p", b.Atom("missing", "x", nil)))
			},
			target: plugin.ErrUnknownAtom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := dom.Element("div")
			_, err := r.Render(mustBuild(t, tt.build), root)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			var perr *PluginError
			if !errors.As(err, &perr) {
				t.Errorf("expected a *PluginError, got %T", err)
			}
			if root.FirstChild != nil {
				t.Error("root should be left empty after a failed render")
			}
		})
	}
}

func TestRenderNilArguments(t *testing.T) {
	r := New(nil, Options{})
	if _, err := r.Render(post.New(), nil); !errors.Is(err, ErrNilRoot) {
		t.Errorf("expected ErrNilRoot, got %v", err)
	}
	if _, err := r.Render(nil, dom.Element("div")); !errors.Is(err, ErrNilPost) {
		t.Errorf("expected ErrNilPost, got %v", err)
	}
}

func TestRenderCustomClasses(t *testing.T) {
	reg := plugin.NewRegistry()
	if err := reg.Register(plugin.NewCard("c", nil, nil)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	r := New(reg, Options{CardClass: "card"})
	if r.Options().AtomClass != DefaultOptions().AtomClass {
		t.Error("empty AtomClass should fall back to the default")
	}

	root := dom.Element("div")
	p := mustBuild(t, func(b *post.Builder) *post.Post {
		return b.Post(b.CardSection("c", nil))
	})
	if _, err := r.Render(p, root); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !dom.HasClass(root.FirstChild, "card") {
		t.Errorf("card wrapper = %s", dom.String(root.FirstChild))
	}
}
