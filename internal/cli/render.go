package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	dayio "github.com/fcollf/dayplan/pkg/io"
	"github.com/fcollf/dayplan/pkg/render/dayview"
	"github.com/fcollf/dayplan/pkg/render/nodelink"
)

const (
	formatSVG  = "svg"  // SVG day planner
	formatDOT  = "dot"  // Graphviz DOT source of the overlap graph
	formatPNG  = "png"  // overlap graph rendered to PNG via Graphviz
	formatJSON = "json" // day plan plus computed layout as JSON
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; empty defaults per format
	format   string // svg, dot, or png
	width    int    // day-view width in pixels
	detailed bool   // include interval/column details in graph labels
}

// renderCommand creates the render command for generating day-view SVGs
// and overlap-graph diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [day.yaml]",
		Short: "Render a day file to SVG or an overlap diagram",
		Long: `Render a day file.

The default format (svg) draws the planner itself: an hour grid with one
block per event, overlapping events sharing the width according to their
column assignment. The dot and png formats instead export the overlap
graph that produced the layout, as Graphviz DOT source or a rendered
image - useful for inspecting the leading/trailing topology. The json
format exports the events together with their computed placement, for
external tools.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png, json")
	cmd.Flags().IntVar(&opts.width, "width", 0, "day view width in pixels")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include interval and column details in graph labels")
	return cmd
}

func validateFormat(f string) error {
	switch f {
	case formatSVG, formatDOT, formatPNG, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want svg, dot, png, or json)", f)
}

func (c *CLI) runRender(path string, opts renderOpts) error {
	day, g, err := c.loadAndReconcile(path)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatSVG:
		viewOpts := cfg.viewOptions()
		if opts.width > 0 {
			viewOpts.Width = opts.width
		}
		var buf bytes.Buffer
		if err := dayview.Render(&buf, g, day, viewOpts); err != nil {
			return err
		}
		data = buf.Bytes()
	case formatDOT:
		data = []byte(nodelink.ToDOT(g, day, nodelink.Options{Detailed: opts.detailed}))
	case formatPNG:
		dot := nodelink.ToDOT(g, day, nodelink.Options{Detailed: opts.detailed})
		data, err = nodelink.RenderPNG(dot)
		if err != nil {
			return err
		}
	case formatJSON:
		var buf bytes.Buffer
		if err := dayio.WriteJSON(&buf, g, day); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, ".yaml") + "." + opts.format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	c.Logger.Infof("Wrote %s (%d bytes)", out, len(data))
	return nil
}
