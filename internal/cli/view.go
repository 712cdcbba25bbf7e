package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fcollf/dayplan/pkg/layout"
	"github.com/fcollf/dayplan/pkg/schedule"
)

// slotMinutes is the vertical resolution of the terminal grid: one
// terminal row per half hour.
const slotMinutes = 30

// viewCommand creates the view command for browsing a day plan in the
// terminal.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [day.yaml]",
		Short: "Browse the day plan in an interactive terminal grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(args[0])
		},
	}
	return cmd
}

func (c *CLI) runView(path string) error {
	day, g, err := c.loadAndReconcile(path)
	if err != nil {
		return err
	}

	model := newDayModel(day, g)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run view: %w", err)
	}
	return nil
}

// Block styles for the terminal day grid.
var (
	styleBlock         = lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(colorWhite)
	styleBlockSelected = lipgloss.NewStyle().Background(colorCyan).Foreground(lipgloss.Color("0")).Bold(true)
	styleGutter        = lipgloss.NewStyle().Foreground(colorDim)
)

// dayModel is the bubbletea model for the interactive day grid.
type dayModel struct {
	day   *schedule.Day
	graph *layout.Graph

	order  []string // display order, cursor moves through this
	cursor int
	width  int
	height int
}

func newDayModel(day *schedule.Day, g *layout.Graph) dayModel {
	return dayModel{
		day:    day,
		graph:  g,
		order:  g.Order(),
		width:  80,
		height: 24,
	}
}

func (m dayModel) Init() tea.Cmd {
	return nil
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.order)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m dayModel) View() string {
	if len(m.order) == 0 {
		return StyleDim.Render("no events") + "\n"
	}

	first, last := m.slotWindow()
	gutter := 7
	content := max(m.width-gutter, 10)

	var b strings.Builder
	b.WriteString(StyleTitle.Render("dayplan") + " " + StyleDim.Render(m.day.Date.Format("2006-01-02")) + "\n")

	for slot := first; slot < last; slot++ {
		minute := slot * slotMinutes
		if minute%60 == 0 {
			b.WriteString(styleGutter.Render(fmt.Sprintf("%02d:%02d ", minute/60, minute%60)))
		} else {
			b.WriteString(strings.Repeat(" ", gutter-1))
		}
		b.WriteString(m.renderSlot(minute, content))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.renderSelection(content+gutter))
	b.WriteString(StyleDim.Render("\n↑/↓ select · q quit\n"))
	return b.String()
}

// slotWindow returns the half-hour slot range covering all events.
func (m dayModel) slotWindow() (first, last int) {
	first, last = 9*60/slotMinutes, 18*60/slotMinutes
	for _, n := range m.graph.Nodes() {
		if s := n.Span().Lower / slotMinutes; s < first {
			first = s
		}
		if s := (n.Span().Upper + slotMinutes - 1) / slotMinutes; s > last {
			last = s
		}
	}
	return first, last
}

// renderSlot draws one half-hour row: each event covering the slot owns a
// horizontal span proportional to its column assignment.
func (m dayModel) renderSlot(minute, width int) string {
	type cell struct {
		id    string
		label bool // first row of the event, carries the title
	}
	cells := make([]cell, width)

	for _, n := range m.graph.Nodes() {
		span := n.Span()
		if minute >= span.Upper || minute+slotMinutes <= span.Lower {
			continue
		}
		lane := width / n.Columns()
		from := n.Index() * lane
		to := from + lane
		if n.Index() == n.Columns()-1 {
			to = width
		}
		label := span.Lower >= minute && span.Lower < minute+slotMinutes
		for x := from; x < to && x < width; x++ {
			cells[x] = cell{id: n.ID(), label: label}
		}
	}

	var out strings.Builder
	for x := 0; x < width; {
		c := cells[x]
		run := x
		for run < width && cells[run].id == c.id {
			run++
		}
		chunk := strings.Repeat(" ", run-x)
		if c.id != "" {
			if c.label {
				title := eventTitle(m.day, c.id)
				chunk = " " + padTo(title, run-x-1)
			}
			style := styleBlock
			if m.cursor < len(m.order) && m.order[m.cursor] == c.id {
				style = styleBlockSelected
			}
			out.WriteString(style.Render(chunk))
		} else {
			out.WriteString(chunk)
		}
		x = run
	}
	return out.String()
}

// renderSelection draws the footer panel describing the selected event.
func (m dayModel) renderSelection(width int) string {
	if m.cursor >= len(m.order) {
		return ""
	}
	id := m.order[m.cursor]
	n := m.graph.Node(id)
	if n == nil {
		return ""
	}
	line := fmt.Sprintf("%s  %s  column %d/%d",
		eventTitle(m.day, id), n.Span(), n.Index()+1, n.Columns())
	if e, ok := m.day.Event(id); ok && e.Subtitle != "" {
		line += "  " + e.Subtitle
	}
	return StyleValue.Render(padTo(line, width)) + "\n"
}

// padTo truncates or right-pads s to exactly n display columns.
func padTo(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}
