package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mintsh/mintsh/commands"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the shell's builtin commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', 0)
		defer tw.Flush()

		for _, builtin := range commands.ListBuiltinCommands() {
			fmt.Fprintf(tw, "%s\t%s\n", strings.Join(builtin.Names, ", "), builtin.Short)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
