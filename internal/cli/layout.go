package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	dayio "github.com/fcollf/dayplan/pkg/io"
	"github.com/fcollf/dayplan/pkg/layout"
	"github.com/fcollf/dayplan/pkg/schedule"
)

// layoutCommand creates the layout command for computing and printing the
// column layout of a day file.
func (c *CLI) layoutCommand() *cobra.Command {
	var showEdges bool

	cmd := &cobra.Command{
		Use:   "layout [day.yaml]",
		Short: "Compute the column layout for a day file",
		Long: `Compute the column layout for a day file.

Loads the schedule, reconciles it into an overlap graph, and prints one
row per event with its interval and assigned column. Overlapping events
share a column count; an event with no overlaps occupies column 1 of 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(args[0], showEdges)
		},
	}

	cmd.Flags().BoolVar(&showEdges, "edges", false, "include leading/trailing neighbors per event")
	return cmd
}

func (c *CLI) runLayout(path string, showEdges bool) error {
	day, g, err := c.loadAndReconcile(path)
	if err != nil {
		return err
	}

	headers := []string{"EVENT", "TIME", "COLUMN"}
	if showEdges {
		headers = append(headers, "LEADING", "TRAILING")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...)

	for _, n := range g.Nodes() {
		row := []string{
			eventTitle(day, n.ID()),
			n.Span().String(),
			fmt.Sprintf("%d/%d", n.Index()+1, n.Columns()),
		}
		if showEdges {
			row = append(row, neighborTitles(day, n.Leading()), neighborTitles(day, n.Trailing()))
		}
		t.Row(row...)
	}

	fmt.Println(t)
	fmt.Println(StyleDim.Render(strconv.Itoa(g.Len()) + " events, " + strconv.Itoa(maxColumns(g)) + " columns at the widest point"))
	return nil
}

// loadAndReconcile loads a day file and reconciles it into a fresh graph.
// YAML is the primary schema; files ending in .json go through the JSON
// importer instead.
func (c *CLI) loadAndReconcile(path string) (*schedule.Day, *layout.Graph, error) {
	p := newProgress(c.Logger)
	load := schedule.LoadFile
	if strings.HasSuffix(path, ".json") {
		load = dayio.ImportJSON
	}
	day, err := load(path)
	if err != nil {
		return nil, nil, err
	}

	g := layout.New()
	changed := g.Reconcile(day.Items())
	p.done(fmt.Sprintf("Laid out %d events (%d placements)", len(day.Events), len(changed)))
	return day, g, nil
}

func eventTitle(day *schedule.Day, id string) string {
	if e, ok := day.Event(id); ok {
		return e.Title
	}
	return id
}

func neighborTitles(day *schedule.Day, ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += eventTitle(day, id)
	}
	return out
}

func maxColumns(g *layout.Graph) int {
	cols := 0
	for _, n := range g.Nodes() {
		if n.Columns() > cols {
			cols = n.Columns()
		}
	}
	return cols
}
