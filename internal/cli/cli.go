// Package cli implements the jvdump command-line interface.
//
// jvdump exercises the jvalue document model: it can build and print the
// sample document shipped with the library, or load a YAML, JSON or TOML file
// into a document and write it back in one of the three output formats.
//
// # Commands
//
//   - demo: build the sample document, mutate it and print the results
//   - convert: load a document file and dump it
//
// # Configuration
//
// --config points at an optional TOML file (see fileConfig). Flags given on the
// command line take precedence over file values. --verbose (-v) enables
// debug-level logging through charmbracelet/log.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cybergodev/jvalue"
)

const appName = "jvdump"

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	formatName string
	settings   settings
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		settings: defaultSettings(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "jvdump builds and prints ordered JSON documents",
		Long:          `jvdump is a small companion tool for the jvalue document model. It prints the sample document and converts YAML, JSON or TOML files into compressed, compact or pretty JSON text.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveSettings(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML configuration file")
	root.PersistentFlags().StringVarP(&c.formatName, "format", "f", "", "output format: compress, compact or pretty")

	root.AddCommand(c.demoCommand())
	root.AddCommand(c.convertCommand())

	return root
}

// resolveSettings merges defaults, the config file and flags, then installs the
// library configuration.
func (c *CLI) resolveSettings(cmd *cobra.Command) error {
	s := defaultSettings()

	if c.configPath != "" {
		fc, err := loadConfigFile(c.configPath)
		if err != nil {
			return err
		}
		if err := fc.apply(&s); err != nil {
			return fmt.Errorf("config %s: %w", c.configPath, err)
		}
		if s.logLevel != "" && !cmd.Flags().Changed("verbose") {
			c.SetLogLevel(parseLevel(s.logLevel))
		}
	}

	if cmd.Flags().Changed("format") {
		f, err := jvalue.ParseFormat(c.formatName)
		if err != nil {
			return err
		}
		s.format = f
	}

	s.library.Logger = slogger(c.Logger)
	if err := jvalue.SetDefaultConfig(s.library); err != nil {
		return err
	}
	c.settings = s

	c.Logger.Debug("settings resolved",
		"format", s.format,
		"copy_policy", s.library.CopyPolicy,
		"config", c.configPath,
	)
	return nil
}
