// Command richcursor renders scenario posts and checks how native
// selection endpoints resolve to logical positions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dshills/richcursor/internal/config"
	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/editor"
	"github.com/dshills/richcursor/internal/logging"
	"github.com/dshills/richcursor/internal/scenario"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Config   string `name:"config" short:"c" help:"Path to a TOML configuration file" type:"path"`
	LogLevel string `name:"log-level" help:"Override logging.level (debug, info, warn, error)"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Probe   ProbeCmd   `cmd:"" help:"Resolve every probe of a scenario and report mismatches"`
	Render  RenderCmd  `cmd:"" help:"Print the rendered HTML of a scenario"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// loadConfig builds the configuration: defaults, the --config file, the
// environment and finally the command-line overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	var values map[string]any
	if g.LogLevel != "" {
		values = map[string]any{"logging.level": g.LogLevel}
	}
	cfg := config.New(config.WithFile(g.Config), config.WithValues(values))
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (g *Globals) logger(cfg *config.Config) *logging.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Logging().LogLevel(),
		Output: g.Stderr,
		Prefix: "richcursor",
	})
}

// ProbeCmd resolves the probes of a scenario.
type ProbeCmd struct {
	Scenario string `arg:"" help:"Scenario YAML file" type:"existingfile"`
	Watch    bool   `short:"w" help:"Re-run when the scenario or configuration changes"`
	Verbose  bool   `short:"v" help:"Draw the caret for every probe"`
}

// errMismatch is returned when at least one probe fails.
var errMismatch = errors.New("probe mismatch")

// Run executes the probe command.
func (c *ProbeCmd) Run(g *Globals) error {
	if c.Watch {
		log := logging.New(logging.Config{Level: logging.LevelInfo, Output: g.Stderr, Prefix: "richcursor"})
		return watch(log, []string{c.Scenario, g.Config}, func() error {
			err := c.once(g)
			if err != nil {
				fmt.Fprintf(g.Stderr, "%v\n", err)
			}
			return nil
		})
	}
	return c.once(g)
}

func (c *ProbeCmd) once(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	log := g.logger(cfg)

	s, err := scenario.Load(c.Scenario)
	if err != nil {
		return err
	}
	f, err := s.Build(cfg, editor.WithLogger(log))
	if err != nil {
		return err
	}
	defer f.Close()

	results := f.Run(s.Probes)
	failed := scenario.Failed(results)
	log.Debug("ran %d probes, %d failed", len(results), len(failed))

	r := newReport(DefaultStyles(), c.Verbose)
	fmt.Fprint(g.Stdout, r.Render(c.Scenario, results))
	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d probes failed", errMismatch, len(failed), len(results))
	}
	return nil
}

// RenderCmd prints the rendered HTML of a scenario.
type RenderCmd struct {
	Scenario string `arg:"" help:"Scenario YAML file" type:"existingfile"`
}

// Run executes the render command.
func (c *RenderCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	s, err := scenario.Load(c.Scenario)
	if err != nil {
		return err
	}
	f, err := s.Build(cfg)
	if err != nil {
		return err
	}
	defer f.Close()

	for n := f.Root.FirstChild; n != nil; n = n.NextSibling {
		fmt.Fprintln(g.Stdout, dom.String(n))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(g *Globals) error {
	fmt.Fprintf(g.Stdout, "richcursor %s (%s)\n", version, commit)
	return nil
}

func newParser(cli *CLI, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("richcursor"),
		kong.Description("Map native selections in rendered posts to logical positions"),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	parser, err := newParser(&cli, os.Exit)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
