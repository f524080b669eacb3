package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of legwise.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("legwise CLI\n")
			cmd.Printf("  Version: %s\n", a.info.Version)
			cmd.Printf("  Commit:  %s\n", a.info.Commit)
			cmd.Printf("  Built:   %s\n", a.info.Date)
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
