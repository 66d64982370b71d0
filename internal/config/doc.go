// Package config provides layered configuration for richcursor.
//
// Settings are resolved from three layers, lowest priority first:
//
//  1. Built-in defaults
//  2. A TOML file (with @include support)
//  3. Environment variables prefixed with RICHCURSOR_
//
// Settings are addressed by dotted paths such as "cursor.cardBoundaryRepair".
// Typed section accessors (Logging, Cursor, Render) return snapshots with
// defaults applied; type mismatches fall back to the default and are
// recorded in Errors.
//
// Basic usage:
//
//	cfg := config.New(config.WithFile("richcursor.toml"))
//	if err := cfg.Load(); err != nil {
//		return err
//	}
//	repair := cfg.Cursor().CardBoundaryRepair
package config
