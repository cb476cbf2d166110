package main

import (
	"fmt"
	"os"

	"github.com/go-tangle/tangle"
	"github.com/go-tangle/tangle/fsio"
	"github.com/go-tangle/tangle/watch"
)

// CLI is the root kong command: debug markers, warning policy, an
// optional code-map path, a tangle-skip flag, and an optional watch mode,
// applied to one or more input documents.
type CLI struct {
	Debug    bool     `name:"debug" short:"g" help:"Emit #line directives into tangled output"`                   //nolint:lll
	Warnings string   `name:"warnings" short:"W" enum:"soft,error,none" default:"none" help:"Warning policy: soft, error, or none"` //nolint:lll
	MapFile  string   `name:"map" short:"m" help:"Write a code map to this path instead of (or as well as) tangling"`               //nolint:lll
	NoTangle bool     `name:"no-tangle" short:"n" help:"Skip writing tangled output files"`                                          //nolint:lll
	Watch    bool     `name:"watch" help:"Re-run on every change to an input file"`                                                  //nolint:lll
	Files    []string `arg:"" name:"file" help:"Org documents to tangle" type:"existingfile"`                                        //nolint:lll
}

// Run executes one (or, under --watch, repeated) tangle passes.
func (c *CLI) Run() error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	if !c.Watch {
		return c.runOnce(cfg)
	}
	return c.runWatch(cfg)
}

func (c *CLI) config() (*tangle.Config, error) {
	mode, err := parseWarningMode(c.Warnings)
	if err != nil {
		return nil, err
	}
	cfg := tangle.NewConfig()
	cfg.Debug = c.Debug
	cfg.Warnings = mode
	cfg.TangleCode = !c.NoTangle
	cfg.Fs = fsio.AtomicOS{}
	return cfg, nil
}

func parseWarningMode(s string) (tangle.WarningMode, error) {
	switch s {
	case "", "none":
		return tangle.WarningsNone, nil
	case "soft":
		return tangle.WarningsSoft, nil
	case "error":
		return tangle.WarningsError, nil
	default:
		return tangle.WarningsNone, fmt.Errorf("unrecognized warning mode %q", s)
	}
}

func (c *CLI) sources() ([]tangle.Source, error) {
	sources := make([]tangle.Source, 0, len(c.Files))
	for _, f := range c.Files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, &tangle.IOError{Path: f, Cause: err}
		}
		sources = append(sources, tangle.Source{Name: f, Data: data})
	}
	return sources, nil
}

func (c *CLI) runOnce(cfg *tangle.Config) error {
	srcs, err := c.sources()
	if err != nil {
		return err
	}

	result, runErr := tangle.Run(cfg, srcs)
	if runErr != nil {
		return runErr
	}

	if c.MapFile != "" {
		if err := c.writeMap(cfg, result); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) writeMap(cfg *tangle.Config, result *tangle.Result) error {
	w, err := cfg.Fs.Create(c.MapFile)
	if err != nil {
		return &tangle.IOError{Path: c.MapFile, Cause: err}
	}
	defer w.Close()

	if err := tangle.WriteCodeMap(w, result.Files, result.Registry); err != nil {
		return &tangle.IOError{Path: c.MapFile, Cause: err}
	}
	return nil
}

// runWatch re-runs the full parse/expand pipeline every time one of the
// input files changes, logging errors instead of exiting so the watch
// loop survives a transient mistake in the document being edited.
func (c *CLI) runWatch(cfg *tangle.Config) error {
	w, err := watch.New(c.Files)
	if err != nil {
		return err
	}
	defer w.Close()

	run := func() {
		if err := c.runOnce(cfg); err != nil {
			cfg.Logger.Printf("tangle: %v", err)
		}
	}

	run()
	for {
		select {
		case <-w.Events():
			run()
		case err := <-w.Errors():
			cfg.Logger.Printf("watch: %v", err)
		}
	}
}
