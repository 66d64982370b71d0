package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/richcursor/internal/logging"
)

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string
}

// LogLevel returns Level parsed for the logging package.
func (l LoggingConfig) LogLevel() logging.Level {
	return logging.ParseLevel(l.Level)
}

// CursorConfig holds the selection resolution settings.
type CursorConfig struct {
	// CardBoundaryRepair moves carets reported on a section edge next to a
	// card onto the card.
	CardBoundaryRepair bool
}

// RenderConfig holds the rendering settings.
type RenderConfig struct {
	AtomClass string
	CardClass string
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	level := c.getStringOr("logging.level", "info")
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.recordError("logging.level", fmt.Errorf("%w: logging.level %q", ErrInvalidValue, level))
		level = "info"
	}
	return LoggingConfig{Level: level}
}

// Cursor returns type-safe access to cursor settings.
func (c *Config) Cursor() CursorConfig {
	return CursorConfig{
		CardBoundaryRepair: c.getBoolOr("cursor.cardBoundaryRepair", true),
	}
}

// Render returns type-safe access to render settings.
func (c *Config) Render() RenderConfig {
	return RenderConfig{
		AtomClass: c.getStringOr("render.atomClass", "-mobiledoc-kit__atom"),
		CardClass: c.getStringOr("render.cardClass", "__mobiledoc-card"),
	}
}

// The get*Or helpers only return the default silently for a missing
// setting; type errors are recorded first.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordError(path, err)
		}
		return defaultValue
	}
	return v
}
