package scenario

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dshills/richcursor/internal/config"
	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/editor"
	"github.com/dshills/richcursor/internal/engine/post"
	"github.com/dshills/richcursor/internal/plugin"
	"github.com/dshills/richcursor/internal/plugin/lua"
	"golang.org/x/net/html"
)

// Fixture is a rendered scenario.
type Fixture struct {
	Editor *editor.Editor
	Root   *html.Node

	closers []io.Closer
}

// Close destroys the editor and releases scripted plugins.
func (f *Fixture) Close() error {
	f.Editor.Destroy()
	var errs []error
	for _, c := range f.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// BuildPost constructs the scenario's post.
func (s *Scenario) BuildPost() (*post.Post, error) {
	p, err := post.Build(func(b *post.Builder) *post.Post {
		sections := make([]post.Section, 0, len(s.Post))
		for _, sec := range s.Post {
			if sec.Card != "" {
				sections = append(sections, b.CardSection(sec.Card, sec.Payload))
				continue
			}
			markers := make([]*post.Marker, 0, len(sec.Markers))
			for _, m := range sec.Markers {
				if m.Atom != "" {
					value := m.Value
					if value == "" {
						value = m.Atom
					}
					markers = append(markers, b.Atom(m.Atom, value, m.Payload))
					continue
				}
				markers = append(markers, b.Marker(m.Text, m.Markups...))
			}
			sections = append(sections, b.MarkupSection(sec.Markup, markers...))
		}
		return b.Post(sections...)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return p, nil
}

// plugins returns the declared card and atom plugins followed by the
// scripted ones. The returned closers release the scripted plugins.
func (s *Scenario) plugins() ([]plugin.Plugin, []io.Closer, error) {
	var (
		out     []plugin.Plugin
		closers []io.Closer
	)
	for _, name := range s.Cards {
		out = append(out, plugin.NewCard(name, nil, nil))
	}
	for _, a := range s.Atoms {
		text := a.Text
		out = append(out, plugin.NewAtom(a.Name, func(env plugin.Env) (*html.Node, error) {
			if text == "" {
				return dom.Text(env.Value), nil
			}
			return dom.Text(text), nil
		}))
	}
	for _, path := range s.Plugins {
		if !filepath.IsAbs(path) && s.Dir != "" {
			path = filepath.Join(s.Dir, path)
		}
		p, err := lua.LoadFile(path)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, nil, fmt.Errorf("loading plugin %s: %w", path, err)
		}
		out = append(out, p)
		if c, ok := p.(io.Closer); ok {
			closers = append(closers, c)
		}
	}
	return out, closers, nil
}

// Build constructs the post and plugins, creates an editor with cfg plus
// the scenario's own config values, and renders it into a fresh root.
// A nil cfg starts from defaults.
func (s *Scenario) Build(cfg *config.Config, opts ...editor.Option) (*Fixture, error) {
	p, err := s.BuildPost()
	if err != nil {
		return nil, err
	}
	plugins, closers, err := s.plugins()
	if err != nil {
		return nil, err
	}
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	if cfg == nil {
		cfg = config.New()
	}
	for path, v := range s.Config {
		if err := cfg.Set(path, v); err != nil {
			closeAll()
			return nil, fmt.Errorf("%w: config %s: %v", ErrInvalidScenario, path, err)
		}
	}

	opts = append([]editor.Option{editor.WithPlugins(plugins...), editor.WithConfig(cfg)}, opts...)
	ed, err := editor.New(p, opts...)
	if err != nil {
		closeAll()
		return nil, err
	}
	root := dom.Element("div", dom.Attr("id", "editor"))
	if err := ed.Render(root); err != nil {
		closeAll()
		return nil, err
	}
	return &Fixture{Editor: ed, Root: root, closers: closers}, nil
}
