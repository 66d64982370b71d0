package editor

import (
	"github.com/dshills/richcursor/internal/config"
	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/logging"
	"github.com/dshills/richcursor/internal/plugin"
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithCards registers card plugins.
func WithCards(cards ...plugin.Plugin) Option {
	return func(e *Editor) {
		e.cards = append(e.cards, cards...)
	}
}

// WithAtoms registers atom plugins.
func WithAtoms(atoms ...plugin.Plugin) Option {
	return func(e *Editor) {
		e.atoms = append(e.atoms, atoms...)
	}
}

// WithPlugins registers plugins of either kind, such as scripted plugins
// whose kind is only known after loading.
func WithPlugins(plugins ...plugin.Plugin) Option {
	return func(e *Editor) {
		e.plugins = append(e.plugins, plugins...)
	}
}

// WithUnknownCardHandler sets the fallback for cards with no plugin.
func WithUnknownCardHandler(h plugin.UnknownHandler) Option {
	return func(e *Editor) {
		e.registryOpts = append(e.registryOpts, plugin.WithUnknownCardHandler(h))
	}
}

// WithUnknownAtomHandler sets the fallback for atoms with no plugin.
func WithUnknownAtomHandler(h plugin.UnknownHandler) Option {
	return func(e *Editor) {
		e.registryOpts = append(e.registryOpts, plugin.WithUnknownAtomHandler(h))
	}
}

// WithConfig sets the configuration. The default holds built-in settings.
func WithConfig(cfg *config.Config) Option {
	return func(e *Editor) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSelection sets the native selection the editor reads. By default
// each editor has its own.
func WithSelection(sel *dom.Selection) Option {
	return func(e *Editor) {
		if sel != nil {
			e.selection = sel
		}
	}
}
