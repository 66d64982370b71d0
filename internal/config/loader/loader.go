// Package loader reads configuration sources into nested maps.
//
// Sources are TOML files (with @include directives) and prefixed
// environment variables. Every loader returns a map[string]any tree keyed
// by section and setting name; callers merge the trees with DeepMerge.
package loader

import (
	"io/fs"
	"os"
)

// Loader reads configuration from a single source.
// Load returns nil, nil when the source does not exist.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the file access used by file loaders.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads files from the operating system.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MapFS adapts an fs.FS, such as fstest.MapFS or an embed.FS.
type MapFS struct {
	FS fs.FS
}

// ReadFile implements FileSystem.
func (m MapFS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, path)
}
