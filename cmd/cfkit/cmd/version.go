package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cfkit version and backend",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cfkit %s (%s backend)\n", cfkit.WrapperVersion(), cfkit.Backend())
	},
}
