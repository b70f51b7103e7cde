// Package ui provides terminal output components for the smscode CLI.
//
// This package uses Lipgloss and Bubbles to render polished output for the
// non-interactive commands. Unlike the interactive code widget, these
// components follow a "print and move on" pattern.
//
// # Components
//
//   - Header: command banner showing the operation name and parameters
//   - CountdownProgress: one line per countdown tick with a progress bar
//   - Result: success, warning and failure boxes
//   - Printer.Confirm: yes/no prompt behind a warning box
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Countdown", "smscode countdown", map[string]string{"Duration": "5s"})
//	err := countdown.Countdown(ctx, e, 5*time.Second, p.CountdownListener(5*time.Second))
//
// # Logging Integration
//
// This package expects logging to be controlled via the SMSCODE_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
