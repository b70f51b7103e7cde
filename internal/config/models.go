package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/muurk/smscode/internal/codeview"
)

// CurrentVersion is the configuration file format version.
const CurrentVersion = 1

// Config represents the entire configuration file.
type Config struct {
	Version int `yaml:"version" toml:"version"`

	Title  Label `yaml:"title" toml:"title"`   // Text above the slots
	Action Label `yaml:"action" toml:"action"` // Action button; empty text hides it

	// Seconds the action stays disabled after start and after each click.
	// Zero disables the countdown.
	CountdownSeconds int `yaml:"countdown_seconds" toml:"countdown_seconds"`

	HideKeyboardOnLastInput bool `yaml:"hide_keyboard_on_last_input" toml:"hide_keyboard_on_last_input"`
}

// Label is the configurable text of the title or action button.
type Label struct {
	Text  string `yaml:"text" toml:"text"`
	Color string `yaml:"color,omitempty" toml:"color,omitempty"` // "#RRGGBB" or ANSI "0"-"255"
	Style string `yaml:"style,omitempty" toml:"style,omitempty"` // normal, bold, italic, bold_italic
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:          CurrentVersion,
		Title:            Label{Text: "Enter the verification code", Style: "bold"},
		Action:           Label{Text: "Resend code"},
		CountdownSeconds: 60,
	}
}

// Countdown returns the countdown as a duration.
func (c *Config) Countdown() time.Duration {
	return time.Duration(c.CountdownSeconds) * time.Second
}

// Validate checks every field and returns the first problem as a
// *ValidationError.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return newValidationError("version", strconv.Itoa(c.Version),
			"unsupported config version (expected "+strconv.Itoa(CurrentVersion)+")")
	}
	if err := c.Title.validate("title"); err != nil {
		return err
	}
	if err := c.Action.validate("action"); err != nil {
		return err
	}
	if c.CountdownSeconds < 0 {
		return newValidationError("countdown_seconds", strconv.Itoa(c.CountdownSeconds),
			"must not be negative")
	}
	return nil
}

func (l Label) validate(field string) error {
	if l.Color != "" && !validColor(l.Color) {
		return newValidationError(field+".color", l.Color,
			`must be "#RRGGBB" or an ANSI color number 0-255`)
	}
	if _, ok := codeview.ParseTextStyle(l.Style); !ok {
		return newValidationError(field+".style", l.Style,
			"must be one of normal, bold, italic, bold_italic")
	}
	return nil
}

// validColor accepts the colors lipgloss understands as a plain string.
func validColor(color string) bool {
	if strings.HasPrefix(color, "#") {
		if len(color) != 7 {
			return false
		}
		_, err := strconv.ParseUint(color[1:], 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(color)
	return err == nil && n >= 0 && n <= 255
}

// ToOptions validates the config and converts it to widget options.
func (c *Config) ToOptions() (codeview.Options, error) {
	if err := c.Validate(); err != nil {
		return codeview.Options{}, err
	}

	return codeview.Options{
		Title:                   c.Title.toLabel(),
		Action:                  c.Action.toLabel(),
		RepeatAfter:             c.Countdown(),
		HideKeyboardOnLastInput: c.HideKeyboardOnLastInput,
	}, nil
}

func (l Label) toLabel() codeview.Label {
	style, _ := codeview.ParseTextStyle(l.Style)
	return codeview.Label{Text: l.Text, Color: l.Color, Style: style}
}
