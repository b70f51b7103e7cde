// Package config persists the verification code widget's appearance and
// behaviour.
//
// The configuration file is YAML by default. A path ending in ".toml" is
// read and written as TOML instead.
//
// # Configuration File Location
//
// The default file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/smscode/config.yaml or $HOME/.config/smscode/config.yaml
//   - macOS: $HOME/.config/smscode/config.yaml
//   - Windows: %LOCALAPPDATA%\smscode\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load("") // default location, defaults when missing
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.CountdownSeconds = 30
//	if err := cfg.Save(""); err != nil {
//	    log.Fatal(err)
//	}
//
//	opts, err := cfg.ToOptions() // validated codeview.Options
//
// # Thread Safety
//
// File writes are protected by a mutex and are atomic (temporary file and
// rename).
package config
