package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/richcursor/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "RICHCURSOR_"

// Config holds the merged configuration.
type Config struct {
	mu sync.RWMutex

	path      string
	fs        loader.FileSystem
	envPrefix string
	overrides map[string]any

	merged map[string]any
	errs   map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the TOML file to load. A missing file is not an error.
func WithFile(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFS sets the file system used to read the TOML file.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvPrefix sets the environment prefix. An empty prefix disables the
// environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithValues sets values that take priority over every loaded layer.
func WithValues(values map[string]any) Option {
	return func(c *Config) {
		for path, v := range values {
			loader.SetPath(c.overrides, path, v)
		}
	}
}

// New creates a Config holding only the defaults. Call Load to read the
// file and environment layers.
func New(opts ...Option) *Config {
	c := &Config{
		fs:        loader.OSFS{},
		envPrefix: EnvPrefix,
		overrides: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.merged = loader.DeepMerge(loader.DeepMerge(nil, Defaults()), c.overrides)
	return c
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level": "info",
		},
		"cursor": map[string]any{
			"cardBoundaryRepair": true,
		},
		"render": map[string]any{
			"atomClass": "-mobiledoc-kit__atom",
			"cardClass": "__mobiledoc-card",
		},
	}
}

// Load reads every layer and replaces the current settings. On error the
// previous settings are kept.
func (c *Config) Load() error {
	merged := loader.DeepMerge(nil, Defaults())

	if c.path != "" {
		file, err := loader.NewTOMLLoaderWithFS(c.fs, c.path).Load()
		if err != nil {
			return fmt.Errorf("loading %s: %w", c.path, err)
		}
		merged = loader.DeepMerge(merged, file)
	}

	if c.envPrefix != "" {
		env, err := loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	merged = loader.DeepMerge(merged, c.overrides)

	c.mu.Lock()
	c.merged = merged
	c.errs = nil
	c.mu.Unlock()
	return nil
}

// Path returns the configured TOML file.
func (c *Config) Path() string {
	return c.path
}

// Get returns the value at a dotted path.
func (c *Config) Get(path string) (any, bool) {
	if !validPath(path) {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.GetPath(c.merged, path)
}

// Set stores a value at a dotted path until the next Load.
func (c *Config) Set(path string, value any) error {
	if !validPath(path) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	loader.SetPath(c.merged, path, value)
	return nil
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// Merged returns a copy of the merged settings.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return loader.DeepMerge(nil, c.merged)
}

// Errors returns the type errors recorded by the section accessors,
// keyed by setting path.
func (c *Config) Errors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.errs) == 0 {
		return nil
	}
	out := make(map[string]error, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

func (c *Config) recordError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.errs == nil {
		c.errs = make(map[string]error)
	}
	if _, exists := c.errs[path]; !exists {
		c.errs[path] = err
	}
}

func validPath(path string) bool {
	if path == "" {
		return false
	}
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
