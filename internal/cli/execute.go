package cli

import (
	"bytes"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs a fully wired root command with the given args and
// returns everything written to its output streams. Used by command tests.
func ExecuteCommand(root *cobra.Command, args ...string) (output string, err error) {
	_, output, err = ExecuteCommandC(root, args...)
	return output, err
}

// ExecuteCommandC runs a command and returns the executed subcommand, its
// output, and any error
func ExecuteCommandC(root *cobra.Command, args ...string) (c *cobra.Command, output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err = root.ExecuteC()

	return c, buf.String(), err
}
