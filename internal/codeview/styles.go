package codeview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple - focused slot, title
	SecondaryColor = lipgloss.Color("#43BF6D") // Green - filled slots
	AccentColor    = lipgloss.Color("#3D8AF7") // Blue - action button
	SubtleColor    = lipgloss.Color("#626262") // Gray - empty slots, disabled action
	TextColor      = lipgloss.Color("#FFFFFF") // White
)

// SlotWidth is the inner width of a slot box.
const SlotWidth = 3

// TextStyle selects the font style of the title and action labels.
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

var textStyleNames = map[TextStyle]string{
	StyleNormal:     "normal",
	StyleBold:       "bold",
	StyleItalic:     "italic",
	StyleBoldItalic: "bold_italic",
}

// String returns the configuration name of the style
func (s TextStyle) String() string {
	if name, ok := textStyleNames[s]; ok {
		return name
	}
	return "normal"
}

// ParseTextStyle maps a configuration name to a TextStyle. An empty name is
// StyleNormal.
func ParseTextStyle(name string) (TextStyle, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StyleNormal, true
	}
	for style, n := range textStyleNames {
		if n == name {
			return style, true
		}
	}
	return StyleNormal, false
}

// Label is a piece of text with its color and font style.
type Label struct {
	Text  string
	Color string // lipgloss color: "#RRGGBB" or ANSI "0"-"255"; empty uses the default
	Style TextStyle
}

// Render styles the label text, falling back to fallback when Color is empty.
func (l Label) Render(fallback lipgloss.TerminalColor) string {
	return l.style(fallback).Render(l.Text)
}

func (l Label) style(fallback lipgloss.TerminalColor) lipgloss.Style {
	s := lipgloss.NewStyle()
	if l.Color != "" {
		s = s.Foreground(lipgloss.Color(l.Color))
	} else if fallback != nil {
		s = s.Foreground(fallback)
	}
	switch l.Style {
	case StyleBold:
		s = s.Bold(true)
	case StyleItalic:
		s = s.Italic(true)
	case StyleBoldItalic:
		s = s.Bold(true).Italic(true)
	}
	return s
}

// Common styles
var (
	// slotBaseStyle is shared by every slot box
	slotBaseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(SlotWidth).
			Align(lipgloss.Center).
			MarginRight(1)

	// Focused slot
	FocusedSlotStyle = slotBaseStyle.
				BorderForeground(PrimaryColor)

	// Slot holding a character
	FilledSlotStyle = slotBaseStyle.
			BorderForeground(SecondaryColor)

	// Empty, unfocused slot
	EmptySlotStyle = slotBaseStyle.
			BorderForeground(SubtleColor)

	// Disabled action button text
	DisabledActionStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Countdown suffix next to the action button
	CountdownStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			PaddingTop(1)

	// Outer padding around the widget
	ContainerStyle = lipgloss.NewStyle().
			Padding(1, 2)
)
