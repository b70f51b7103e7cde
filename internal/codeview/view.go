package codeview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/smscode/internal/countdown"
)

// View renders the widget
func (m Model) View() string {
	var b strings.Builder

	if m.opts.Title.Text != "" {
		b.WriteString(m.opts.Title.Render(PrimaryColor))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderSlots())
	b.WriteString("\n")

	if m.hasAction() {
		b.WriteString("\n")
		b.WriteString(m.renderAction())
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))

	return ContainerStyle.Render(b.String())
}

func (m Model) renderSlots() string {
	focused := m.input.Focused()
	boxes := make([]string, 0, len(m.slots))

	for i, slot := range m.slots {
		style := EmptySlotStyle
		switch {
		case i == focused && !m.state.actionFocused:
			style = FocusedSlotStyle
		case m.input.Slot(i) != "":
			style = FilledSlotStyle
		}
		boxes = append(boxes, style.Render(slot.View()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) renderAction() string {
	action := m.opts.Action
	text := action.Text
	if m.state.actionFocused {
		text = "> " + text
	} else {
		text = "  " + text
	}

	var rendered string
	if m.state.actionEnabled {
		rendered = Label{Text: text, Color: action.Color, Style: action.Style}.Render(AccentColor)
		if m.state.actionFocused {
			rendered = lipgloss.NewStyle().Underline(true).Render(rendered)
		}
	} else {
		rendered = DisabledActionStyle.Render(text)
	}

	if m.timer.Running() {
		rendered += " " + CountdownStyle.Render("("+countdown.Format(m.timer.Remaining())+")")
	}
	return rendered
}
