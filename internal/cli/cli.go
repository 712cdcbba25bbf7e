// Package cli implements the dayplan command-line interface.
//
// This package provides commands for laying out single-day schedules,
// rendering them as SVG planners or overlap-graph diagrams, viewing them
// in the terminal, and watching a day file for live changes. The CLI is
// built using cobra with structured logging via charmbracelet/log.
//
// # Commands
//
//   - layout: Compute and print the column layout for a day file
//   - render: Generate an SVG day view or Graphviz overlap diagram
//   - view:   Browse the day plan in an interactive terminal grid
//   - watch:  Re-reconcile the layout whenever the day file changes
//
// All commands support --verbose (-v) for debug-level logging and
// --config for a TOML settings file.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fcollf/dayplan/pkg/buildinfo"
)

// appName is the application name used for config discovery and display.
const appName = "dayplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Dayplan lays out overlapping schedule items side by side",
		Long:         `Dayplan computes a non-overlapping column layout for the items of a single-day schedule, so events that share time render next to each other instead of stacking, and keeps the layout consistent as the schedule changes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML settings file (default: ./dayplan.toml if present)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
