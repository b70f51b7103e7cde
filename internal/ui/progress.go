package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CountdownProgress renders countdown ticks as a line with a progress bar
// filling up as the deadline approaches.
type CountdownProgress struct {
	Total time.Duration // Length of the countdown
	Width int           // Terminal width
	bar   progress.Model
}

// NewCountdownProgress creates a progress display for a countdown of total
func NewCountdownProgress(total time.Duration) *CountdownProgress {
	p := &CountdownProgress{Total: total}
	return p.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (p *CountdownProgress) SetWidth(width int) *CountdownProgress {
	p.Width = width
	barWidth := width - 30 // Leave room for marker, time and percentage
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	p.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
	)
	return p
}

// Percent returns the elapsed share of the countdown in [0, 1]
func (p *CountdownProgress) Percent(remaining time.Duration) float64 {
	if p.Total <= 0 {
		return 1
	}
	percent := 1 - float64(remaining)/float64(p.Total)
	if percent < 0 {
		return 0
	}
	if percent > 1 {
		return 1
	}
	return percent
}

// RenderTick renders one countdown tick
func (p *CountdownProgress) RenderTick(minutes, seconds int) string {
	remaining := time.Duration(minutes*60+seconds) * time.Second
	percent := p.Percent(remaining)

	var b strings.Builder
	b.WriteString(TickTimeStyle.Render(fmt.Sprintf("%s %02d:%02d", TickMarker, minutes, seconds)))
	b.WriteString("  ")
	b.WriteString(p.bar.ViewAs(percent))
	b.WriteString("  ")
	b.WriteString(TickNoteStyle.Render(fmt.Sprintf("%3.0f%%", percent*100)))

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

// RenderStop renders the end of the countdown
func (p *CountdownProgress) RenderStop() string {
	var b strings.Builder
	b.WriteString(SuccessTitleStyle.Render(SuccessMarker + " 00:00"))
	b.WriteString("  ")
	b.WriteString(p.bar.ViewAs(1))
	b.WriteString("  ")
	b.WriteString(TickNoteStyle.Render("action enabled"))

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

// String implements fmt.Stringer
func (p *CountdownProgress) String() string {
	return p.RenderTick(0, 0)
}
