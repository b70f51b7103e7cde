package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/smscode/internal/codeview"
	"github.com/muurk/smscode/internal/logging"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(codeview.SubtleColor).PaddingLeft(2)
	noticeStyle = lipgloss.NewStyle().Foreground(codeview.SecondaryColor).PaddingLeft(2)
)

// appModel hosts the code widget and decides when the program ends
type appModel struct {
	widget codeview.Model

	// Outcome, read after the program exits
	code      string
	submitted bool
	cancelled bool

	resends int
	notice  string
}

func newAppModel(opts codeview.Options, prefill string) appModel {
	widget := codeview.New(opts)
	if prefill != "" {
		widget = widget.SetCode(prefill)
	}

	widget.AddCodeCompleteWatcher(func(complete bool) {
		logging.Debug("Code completeness changed", zap.Bool("complete", complete))
	})

	return appModel{widget: widget}
}

// Init implements tea.Model
func (m appModel) Init() tea.Cmd {
	return m.widget.Init()
}

// Update implements tea.Model
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.widget.Keys.Quit) {
			m.cancelled = true
			return m, tea.Quit
		}

	case codeview.CodeSubmittedMsg:
		if msg.Complete {
			m.code = msg.Code
			m.submitted = true
			logging.Info("Code submitted", zap.Int("length", len(msg.Code)))
			return m, tea.Quit
		}
		m.notice = "Enter all 4 digits first"
		return m, nil

	case codeview.ActionClickedMsg:
		m.resends++
		m.notice = fmt.Sprintf("Code resent (%d)", m.resends)
		logging.Info("Resend requested", zap.Int("count", m.resends))
		return m, nil
	}

	var cmd tea.Cmd
	m.widget, cmd = m.widget.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m appModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	view := m.widget.View()
	if m.notice != "" {
		view += "\n" + noticeStyle.Render(m.notice)
	}
	return view + "\n" + statusStyle.Render(fmt.Sprintf("%d/4 digits", len([]rune(m.widget.Code()))))
}
