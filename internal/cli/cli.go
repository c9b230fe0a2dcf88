// Package cli implements the ezprint command-line interface.
//
// The CLI decodes structured documents (JSON, JSONL, YAML, TOML, CSV, TSV)
// and prints each one on its own line using the ezprint text format. It is
// built with cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: print documents from files or standard input
//   - kinds: list the classification kinds in priority order
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried on the command context.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "ezprint"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with args, writing command output to out and logs to
// errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := RootCommand(errOut)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// RootCommand creates the root command with all subcommands registered.
// Logs go to logOut.
func RootCommand(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "ezprint prints structured documents as compact text",
		Long:          `ezprint decodes JSON, JSONL, YAML, TOML, CSV and TSV documents and prints each one with the ezprint text format: sequences as {a b c}, mappings as {k: v}.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newKindsCmd())

	return root
}
