package dayview

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/fcollf/dayplan/pkg/interval"
	"github.com/fcollf/dayplan/pkg/layout"
	"github.com/fcollf/dayplan/pkg/schedule"
)

const (
	defaultWidth     = 800
	defaultHourStart = 7
	defaultHourEnd   = 20
	defaultHourPx    = 60 // vertical pixels per hour

	gutterWidth = 56 // left gutter holding the hour labels
	blockInset  = 2  // horizontal gap between neighboring blocks
	blockRadius = 6
)

// Palette holds the colors of the rendered planner.
type Palette struct {
	Background string
	Grid       string
	BlockFill  string
	BlockLine  string
	Title      string
	Subtitle   string
	HourLabel  string
}

// DefaultPalette is the built-in light theme.
var DefaultPalette = Palette{
	Background: "#ffffff",
	Grid:       "#e5e5e5",
	BlockFill:  "#dbeafe",
	BlockLine:  "#60a5fa",
	Title:      "#1e3a5f",
	Subtitle:   "#64748b",
	HourLabel:  "#94a3b8",
}

// Options configures the SVG day view.
type Options struct {
	Width     int     // total width in pixels
	HourStart int     // first hour shown on the grid
	HourEnd   int     // last hour shown (exclusive)
	HourPx    int     // vertical pixels per hour
	Palette   Palette // colors; zero fields fall back to DefaultPalette
}

// withDefaults fills unset options. The hour window is widened if any
// event falls outside it, so nothing silently disappears off the grid.
func (o Options) withDefaults(g *layout.Graph) Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.HourEnd <= o.HourStart {
		o.HourStart, o.HourEnd = defaultHourStart, defaultHourEnd
	}
	if o.HourPx <= 0 {
		o.HourPx = defaultHourPx
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette
	}
	for _, n := range g.Nodes() {
		if h := n.Span().Lower / 60; h < o.HourStart {
			o.HourStart = h
		}
		if h := (n.Span().Upper + 59) / 60; h > o.HourEnd {
			o.HourEnd = min(h, 24)
		}
	}
	return o
}

// Render draws the laid-out graph as an SVG planner. Titles and subtitles
// are looked up in day by node ID; nodes without a matching event render
// with their ID as title.
func Render(w io.Writer, g *layout.Graph, day *schedule.Day, opts Options) error {
	opts = opts.withDefaults(g)

	pal := opts.Palette
	height := (opts.HourEnd - opts.HourStart) * opts.HourPx
	contentLeft := gutterWidth
	contentWidth := opts.Width - gutterWidth

	canvas := svg.New(w)
	canvas.Start(opts.Width, height)
	canvas.Rect(0, 0, opts.Width, height, fill(pal.Background))

	// Hour grid with labels down the gutter.
	for h := opts.HourStart; h <= opts.HourEnd; h++ {
		y := (h - opts.HourStart) * opts.HourPx
		canvas.Line(contentLeft, y, opts.Width, y, stroke(pal.Grid))
		if h < opts.HourEnd {
			canvas.Text(contentLeft-8, y+14, fmt.Sprintf("%02d:00", h),
				"text-anchor:end;font-family:sans-serif;font-size:11px;"+fill(pal.HourLabel))
		}
	}

	minuteTop := opts.HourStart * 60
	for _, n := range g.Nodes() {
		drawBlock(canvas, n, day, contentLeft, contentWidth, minuteTop, opts.HourPx, pal)
	}

	canvas.End()
	return nil
}

func drawBlock(canvas *svg.SVG, n *layout.Node, day *schedule.Day, left, width, minuteTop, hourPx int, pal Palette) {
	span := n.Span()
	lane := width / n.Columns()
	x := left + n.Index()*lane
	y := minuteY(span.Lower, minuteTop, hourPx)
	h := minuteY(span.Upper, minuteTop, hourPx) - y

	canvas.Roundrect(x+blockInset, y, lane-2*blockInset, max(h, 8), blockRadius, blockRadius,
		fill(pal.BlockFill)+";"+stroke(pal.BlockLine))

	title, subtitle := n.ID(), ""
	if day != nil {
		if e, ok := day.Event(n.ID()); ok {
			title, subtitle = e.Title, e.Subtitle
		}
	}
	canvas.Text(x+blockInset+8, y+16, title,
		"font-family:sans-serif;font-size:12px;font-weight:bold;"+fill(pal.Title))
	line := span.String()
	if subtitle != "" {
		line = subtitle + " · " + line
	}
	if h >= 34 {
		canvas.Text(x+blockInset+8, y+30, line,
			"font-family:sans-serif;font-size:10px;"+fill(pal.Subtitle))
	}
}

// minuteY converts a day minute to a vertical pixel position.
func minuteY(minute, minuteTop, hourPx int) int {
	return (minute - minuteTop) * hourPx / 60
}

// MinuteHeight returns the rendered pixel height of the given interval at
// the supplied vertical scale.
func MinuteHeight(span interval.Interval, hourPx int) int {
	return span.Duration() * hourPx / 60
}

func fill(c string) string   { return "fill:" + c }
func stroke(c string) string { return "stroke:" + c + ";stroke-width:1" }
