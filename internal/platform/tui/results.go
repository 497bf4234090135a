package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-toss/internal/storage"
)

// resultsTopRuns is how many stored runs the results panel lists.
const resultsTopRuns = 5

var (
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	panelLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	panelBestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	panelHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RunSummary is the outcome of one finished run.
type RunSummary struct {
	Score    int
	Ticks    int
	TickRate int
	Best     int
	NewBest  bool
	Saved    bool // Whether the run reached the score store
	Top      []storage.Run
}

// View renders the results panel.
func (r RunSummary) View() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("You got caught!"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(panelLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Score", fmt.Sprintf("%d", r.Score))
	row("Survived", FormatTicks(r.Ticks, r.TickRate))

	best := fmt.Sprintf("%d", r.Best)
	if r.NewBest {
		best += " " + panelBestStyle.Render("new best!")
	}
	row("Best", best)

	if len(r.Top) > 0 {
		b.WriteString("\n")
		b.WriteString(panelLabelStyle.Render("Top runs"))
		b.WriteString("\n")
		for i, run := range r.Top {
			fmt.Fprintf(&b, "  #%d  %4d  %s\n", i+1, run.Score, FormatTicks(run.Ticks, r.TickRate))
		}
	}

	b.WriteString("\n")
	b.WriteString(panelHintStyle.Render("r retry   q quit"))

	return panelStyle.Render(b.String())
}

// FormatTicks renders a tick count as seconds of play.
func FormatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(tickRate))
}
