package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/smscode/internal/config"
	"github.com/muurk/smscode/internal/countdown"
	"github.com/muurk/smscode/internal/logging"
	"github.com/muurk/smscode/internal/ui"
)

// Widget command flags
var (
	configPath       string
	countdownSeconds int
	titleText        string
	actionText       string
	prefillCode      string
	hideKeyboard     bool
)

// Countdown command flags
var (
	countdownDuration time.Duration
	countdownInterval time.Duration
)

// Config command flags
var forceInit bool

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/smscode/config.yaml; .toml also accepted)")

	rootCmd.Flags().IntVar(&countdownSeconds, "countdown", 0, "Seconds the resend action stays disabled (0 disables the countdown)")
	rootCmd.Flags().StringVar(&titleText, "title", "", "Title shown above the slots")
	rootCmd.Flags().StringVar(&actionText, "action", "", "Action button text (empty string hides the button)")
	rootCmd.Flags().StringVar(&prefillCode, "code", "", "Prefill the slots with a 4-digit code")
	rootCmd.Flags().BoolVar(&hideKeyboard, "hide-keyboard", false, "Stop accepting typing once the last slot is filled")

	countdownCmd.Flags().DurationVar(&countdownDuration, "duration", 5*time.Second, "Countdown length")
	countdownCmd.Flags().DurationVar(&countdownInterval, "interval", countdown.DefaultInterval, "Tick interval")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file without asking")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flags changed on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("countdown") {
		cfg.CountdownSeconds = countdownSeconds
	}
	if flags.Changed("title") {
		cfg.Title.Text = titleText
	}
	if flags.Changed("action") {
		cfg.Action.Text = actionText
	}
	if flags.Changed("hide-keyboard") {
		cfg.HideKeyboardOnLastInput = hideKeyboard
	}

	return cfg, nil
}

func runWidget(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := cfg.ToOptions()
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if prefillCode != "" && len([]rune(prefillCode)) != 4 {
		return fmt.Errorf("--code must have exactly 4 characters, got %q", prefillCode)
	}

	p := tea.NewProgram(newAppModel(opts, prefillCode), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("widget error: %w", err)
	}

	app, ok := final.(appModel)
	if !ok || !app.submitted {
		return nil
	}

	details := map[string]string{"Code": app.code}
	if app.resends > 0 {
		details["Resends"] = fmt.Sprint(app.resends)
	}
	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Code entered", details)
	return nil
}

// countdownCmd runs the resend countdown without the widget
var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Run the resend countdown headless",
	Long: `Run the countdown that gates the resend action and print every tick.

The action is disabled when the countdown starts and enabled again once less
than a second remains. Press ctrl+c to clear the countdown early.`,
	Example: `  # Default 5 second countdown
  smscode countdown

  # One minute, ticking every 5 seconds
  smscode countdown --duration 1m --interval 5s`,
	Args: cobra.NoArgs,
	RunE: runCountdown,
}

func runCountdown(cmd *cobra.Command, args []string) error {
	if countdownDuration <= 0 {
		return fmt.Errorf("--duration must be positive, got %v", countdownDuration)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Countdown", "smscode countdown", map[string]string{
		"Duration": countdownDuration.String(),
		"Interval": countdownInterval.String(),
	})

	action := countdown.ActionFunc(func(enabled bool) {
		logging.Debug("Action gate", zap.Bool("enabled", enabled))
	})
	e := countdown.New(action)

	run := e.Start(countdownDuration, printer.CountdownListener(countdownDuration))
	err := countdown.Run(ctx, e, run, countdownInterval)
	switch {
	case errors.Is(err, context.Canceled):
		logging.Warn("Countdown cleared before the deadline", zap.Duration("duration", countdownDuration))
		printer.Newline()
		printer.PrintWarning("Countdown cleared", map[string]string{"Action": "enabled"})
		return nil
	case err != nil:
		return fmt.Errorf("countdown failed: %w", err)
	}

	printer.Newline()
	printer.PrintSuccess("Countdown finished", map[string]string{"Action": "enabled"})
	return nil
}

// configCmd groups the config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the widget configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		printer := ui.NewPrinter(cmd.OutOrStdout())
		if _, err := os.Stat(path); err == nil && !forceInit {
			if !printer.Confirm(cmd.InOrStdin(), "Config file exists", []string{path}, "Overwrite with defaults?") {
				return nil
			}
		}

		if err := config.NewConfig().Save(path); err != nil {
			logging.Error("Failed to write config", zap.String("path", path), zap.Error(err))
			return err
		}
		printer.PrintSuccess("Config written", map[string]string{"Path": path})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		cfg, err := config.Load(path)
		if err != nil {
			if config.IsValidationError(err) {
				ui.NewPrinter(cmd.ErrOrStderr()).PrintError("Config invalid", err, []string{
					"Edit " + path,
					"Or reset it with: smscode config init --force",
				})
			}
			return err
		}

		data, err := cfg.Marshal(path)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}
