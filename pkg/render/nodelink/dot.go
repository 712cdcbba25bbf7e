package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/fcollf/dayplan/pkg/layout"
	"github.com/fcollf/dayplan/pkg/schedule"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the interval and column assignment in node
	// labels. When false, only the event title (or ID) is shown.
	Detailed bool
}

// ToDOT converts the overlap graph to Graphviz DOT format. Edges follow
// the trailing direction: an arrow from A to B means B appears after A in
// the layout. Titles are resolved through day when available; day may be
// nil.
func ToDOT(g *layout.Graph, day *schedule.Day, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph overlap {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID(), fmtLabel(n, day, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, n := range g.Nodes() {
		for _, tid := range n.Trailing() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID(), tid)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *layout.Node, day *schedule.Day, detailed bool) string {
	title := n.ID()
	if day != nil {
		if e, ok := day.Event(n.ID()); ok {
			title = e.Title
		}
	}
	if !detailed {
		return title
	}

	parts := []string{
		n.Span().String(),
		fmt.Sprintf("column %d of %d", n.Index()+1, n.Columns()),
	}
	return title + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, nil)
}

func renderFormat(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if post != nil {
		return post(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the viewBox starts
// at the origin with explicit pixel dimensions, which embeds cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
