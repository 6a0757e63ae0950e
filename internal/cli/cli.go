// Package cli implements the flipframes command-line interface.
//
// flipframes poses a page of a two-page spread over an angle sweep and prints
// the CSS matrix3d() value and projected horizontal bounds of every frame.
// It also projects arbitrary x coordinates through a configured transform,
// which is how drag positions are mapped onto a turning page.
//
// # Commands
//
//   - frames: print one line per animation frame
//   - project: print the projected x of each argument
//
// All commands read an optional TOML scene file (--config) and support
// --verbose (-v) for debug logging on stderr.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// CLI holds the output streams shared by all commands.
type CLI struct {
	out    io.Writer
	logger *log.Logger
}

// New creates a CLI printing results to out and logs to logOut.
func New(out, logOut io.Writer, level LogLevel) *CLI {
	return &CLI{
		out:    out,
		logger: newLogger(logOut, level),
	}
}

// SetLogLevel changes the logger's level
func (c *CLI) SetLogLevel(level LogLevel) {
	c.logger.SetLevel(level)
}

// RootCommand builds the flipframes command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "flipframes",
		Short:         "flipframes computes page-flip transforms",
		Long:          `flipframes poses a turning page with 3D transforms and prints CSS matrix3d() values and projected page bounds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(c.framesCommand())
	root.AddCommand(c.projectCommand())

	return root
}
